package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/view"
	"github.com/noah-isme/college-portal/pkg/response"
)

// AdminHandler exposes the admin dashboard and rosters.
type AdminHandler struct {
	deps portal.Deps
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(deps portal.Deps) *AdminHandler {
	return &AdminHandler{deps: deps}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	page := portal.NewAdminDashboard(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Students godoc
// @Summary List students
// @Tags Admin
// @Produce json
// @Param search query string false "Name, student id or email"
// @Param department query string false "Department"
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
func (h *AdminHandler) Students(c *gin.Context) {
	var filter view.RosterFilter
	if !bindQuery(c, &filter) {
		return
	}
	page := portal.NewStudentsPage(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	meta := stateMeta(page.State())
	meta["total"] = page.Len()
	meta["options"] = page.Options()
	response.JSON(c, http.StatusOK, page.Filtered(filter), meta)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags Admin
// @Produce json
// @Param id path string true "Student ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /admin/students/{id} [delete]
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	page := portal.NewStudentsPage(h.deps)
	if err := page.Delete(c.Request.Context(), confirmation(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Faculty godoc
// @Summary List faculty
// @Tags Admin
// @Produce json
// @Param search query string false "Name, employee id, email or designation"
// @Param department query string false "Department"
// @Success 200 {object} response.Envelope
// @Router /admin/faculty [get]
func (h *AdminHandler) Faculty(c *gin.Context) {
	var filter view.RosterFilter
	if !bindQuery(c, &filter) {
		return
	}
	page := portal.NewFacultyPage(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	meta := stateMeta(page.State())
	meta["total"] = page.Len()
	meta["options"] = page.Options()
	response.JSON(c, http.StatusOK, page.Filtered(filter), meta)
}

// DeleteFaculty godoc
// @Summary Delete a faculty member
// @Tags Admin
// @Produce json
// @Param id path string true "Faculty ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /admin/faculty/{id} [delete]
func (h *AdminHandler) DeleteFaculty(c *gin.Context) {
	page := portal.NewFacultyPage(h.deps)
	if err := page.Delete(c.Request.Context(), confirmation(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}
