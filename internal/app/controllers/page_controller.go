package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the landing page
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Index renders the landing page with any pending flash messages
func (c *PageController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", page(ctx, "", nil))
}
