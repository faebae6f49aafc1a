package controllers

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/filestorage"
)

// UploadController serves stored resumes
type UploadController struct {
	fileStorage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(fileStorage filestorage.FileStorage) *UploadController {
	return &UploadController{fileStorage: fileStorage}
}

// ServeResume sends /uploads/:filename from the upload directory
func (c *UploadController) ServeResume(ctx *gin.Context) {
	path := c.fileStorage.GetFullPath(ctx.Param("filename"))
	if path == "" {
		middleware.HandlePageError(ctx, apperrors.NewResourceNotFoundError("file not found"))
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		middleware.HandlePageError(ctx, apperrors.NewResourceNotFoundError("file not found"))
		return
	}

	ctx.File(path)
}
