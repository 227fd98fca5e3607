package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/service"
	"github.com/noah-isme/college-portal/internal/view"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/export"
	"github.com/noah-isme/college-portal/pkg/response"
)

// ExportHandler downloads filtered rosters.
type ExportHandler struct {
	deps    portal.Deps
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(deps portal.Deps, exports *service.ExportService) *ExportHandler {
	if exports == nil {
		exports = service.NewExportService(nil)
	}
	return &ExportHandler{deps: deps, exports: exports}
}

// Roster godoc
// @Summary Export a filtered roster
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param roster path string true "students or faculty"
// @Param format query string false "csv (default) or pdf"
// @Param search query string false "Search term"
// @Param department query string false "Department"
// @Param semester query string false "Semester"
// @Success 200 {file} file
// @Router /admin/export/{roster} [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var filter view.RosterFilter
	if !bindQuery(c, &filter) {
		return
	}

	var content []byte
	switch roster := c.Param("roster"); roster {
	case "students":
		page := portal.NewStudentsPage(h.deps)
		if err := page.Load(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		content, err = h.exports.Students(format, page.Filtered(filter))
	case "faculty":
		page := portal.NewFacultyPage(h.deps)
		if err := page.Load(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		content, err = h.exports.Faculty(format, page.Filtered(filter))
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown roster %q", roster)))
		return
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	filename := export.Filename(c.Param("roster"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, format.ContentType(), content)
}
