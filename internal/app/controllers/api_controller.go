package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
)

// APIController exposes read-only JSON views of the store
type APIController struct {
	recordService  services.RecordService
	companyService services.CompanyService
	studentService services.StudentService
}

// NewAPIController creates a new APIController
func NewAPIController(recordService services.RecordService, companyService services.CompanyService, studentService services.StudentService) *APIController {
	return &APIController{
		recordService:  recordService,
		companyService: companyService,
		studentService: studentService,
	}
}

// Records returns placement records, or unplaced students when placed=unplaced
func (c *APIController) Records(ctx *gin.Context) {
	var req dto.RecordFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError(err))
		return
	}

	set, err := c.recordService.Browse(ctx.Request.Context(), recordQuery(req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RecordListResponse{
		Unplaced: set.Unplaced,
		Records:  set.Placements,
		Students: set.Students,
		Filters:  req,
	}))
}

// Companies returns every company
func (c *APIController) Companies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(companies))
}

// Students returns every student
func (c *APIController) Students(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// Health reports that the server is up
func (c *APIController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
}
