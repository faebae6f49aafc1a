package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
)

// PlacementController handles the place-student form
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// New renders the selection form listing all students and companies
func (c *PlacementController) New(ctx *gin.Context) {
	opts, err := c.placementService.Options(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "place_student.html", page(ctx, "Place Student", gin.H{
		"Students":  opts.Students,
		"Companies": opts.Companies,
	}))
}

// Create records the placement and redirects home
func (c *PlacementController) Create(ctx *gin.Context) {
	var req dto.PlaceStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	if err := c.placementService.PlaceStudent(ctx.Request.Context(), req.ToModel()); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	addFlash(ctx, "Placement recorded")
	ctx.Redirect(http.StatusFound, "/")
}
