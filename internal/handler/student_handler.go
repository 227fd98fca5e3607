package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/pkg/response"
)

// StudentHandler exposes the signed-in student's screens.
type StudentHandler struct {
	deps portal.Deps
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(deps portal.Deps) *StudentHandler {
	return &StudentHandler{deps: deps}
}

// Dashboard godoc
// @Summary Student dashboard
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/dashboard [get]
func (h *StudentHandler) Dashboard(c *gin.Context) {
	page := portal.NewStudentDashboard(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Courses godoc
// @Summary Enrolled courses
// @Tags Student
// @Produce json
// @Param semester query string false "Semester"
// @Param search query string false "Name or code"
// @Success 200 {object} response.Envelope
// @Router /student/courses [get]
func (h *StudentHandler) Courses(c *gin.Context) {
	page := portal.NewStudentCoursesPage(h.deps)
	if err := page.SelectSemester(c.Request.Context(), c.Query("semester")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Filtered(c.Query("search")), stateMeta(page.State()))
}

// Course godoc
// @Summary Enrolled course detail
// @Tags Student
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /student/courses/{id} [get]
func (h *StudentHandler) Course(c *gin.Context) {
	course, err := h.deps.API.Students.Course(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Grades godoc
// @Summary Grade report
// @Tags Student
// @Produce json
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /student/grades [get]
func (h *StudentHandler) Grades(c *gin.Context) {
	page := portal.NewGradesPage(h.deps)
	if err := page.SelectSemester(c.Request.Context(), c.Query("semester")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Submit godoc
// @Summary Hand in an assignment
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param payload body models.SubmissionInput true "Submission"
// @Success 201 {object} response.Envelope
// @Router /student/assignments/{id}/submit [post]
func (h *StudentHandler) Submit(c *gin.Context) {
	var in models.SubmissionInput
	if !bindJSON(c, &in) {
		return
	}
	submission, err := h.deps.API.Students.SubmitAssignment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, submission, map[string]interface{}{"notice": "Assignment submitted successfully"})
}
