package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
)

// ResumeField is the multipart field carrying the resume file
const ResumeField = "resume"

// StudentController handles the add-student form
type StudentController struct {
	studentService services.StudentService
	maxUploadSize  int64
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, maxUploadSize int64) *StudentController {
	return &StudentController{
		studentService: studentService,
		maxUploadSize:  maxUploadSize,
	}
}

// New renders the add-student form
func (c *StudentController) New(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "add_student.html", page(ctx, "Add Student", gin.H{
		"MaxUploadMB": c.maxUploadSize / (1024 * 1024),
	}))
}

// Create stores the submitted student, saving the resume when it is a PDF
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	resume, err := resumeFile(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	student := req.ToModel()
	if err := c.studentService.CreateStudent(ctx.Request.Context(), student, resume); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	addFlash(ctx, "Student "+student.Name+" added")
	ctx.Redirect(http.StatusFound, "/")
}

// resumeFile returns the uploaded resume, or nil when none was sent
func resumeFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(ResumeField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return fh, err
}
