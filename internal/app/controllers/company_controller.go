package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
)

// CompanyController handles the add-company form
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// New renders the add-company form
func (c *CompanyController) New(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "add_company.html", page(ctx, "Add Company", nil))
}

// Create stores the submitted company and redirects home
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	company := req.ToModel()
	if err := c.companyService.CreateCompany(ctx.Request.Context(), company); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	addFlash(ctx, "Company "+company.Name+" added")
	ctx.Redirect(http.StatusFound, "/")
}
