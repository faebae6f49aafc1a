package controllers

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/export"
)

// RecordController handles browsing and exporting placement records
type RecordController struct {
	recordService services.RecordService
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService services.RecordService) *RecordController {
	return &RecordController{recordService: recordService}
}

func recordQuery(req dto.RecordFilterRequest) services.RecordQuery {
	return services.RecordQuery{
		Filter:   req.ToFilter(),
		Unplaced: req.Unplaced(),
	}
}

// ViewRecords renders the filtered records, or the unplaced students when
// placed=unplaced. The submitted filters are echoed back into the form.
func (c *RecordController) ViewRecords(ctx *gin.Context) {
	var req dto.RecordFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	set, err := c.recordService.Browse(ctx.Request.Context(), recordQuery(req))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "view_records.html", page(ctx, "View Records", gin.H{
		"Filters":  req,
		"Query":    ctx.Request.URL.Query(),
		"Unplaced": set.Unplaced,
		"Records":  set.Placements,
		"Students": set.Students,
	}))
}

// ExportPlacements downloads the same selection as ViewRecords as CSV or, for
// type=excel, as a workbook
func (c *RecordController) ExportPlacements(ctx *gin.Context) {
	var req dto.RecordFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandlePageError(ctx, bindError(err))
		return
	}

	format := export.ParseFormat(req.Type)
	out, err := c.recordService.Export(ctx.Request.Context(), recordQuery(req), format)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.FileName}))
	ctx.Header("X-Record-Count", strconv.Itoa(out.Rows))
	ctx.Data(http.StatusOK, format.ContentType(), out.Content)
}
