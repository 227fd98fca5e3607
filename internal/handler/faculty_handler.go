package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/pkg/response"
)

// FacultyHandler exposes the signed-in instructor's screens.
type FacultyHandler struct {
	deps portal.Deps
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(deps portal.Deps) *FacultyHandler {
	return &FacultyHandler{deps: deps}
}

// Dashboard godoc
// @Summary Faculty dashboard
// @Tags Faculty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty/dashboard [get]
func (h *FacultyHandler) Dashboard(c *gin.Context) {
	page := portal.NewFacultyDashboard(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Students godoc
// @Summary Roster of one of my courses
// @Tags Faculty
// @Produce json
// @Param course query string false "Course ID; defaults to the first course taught"
// @Param search query string false "Name, student id or email"
// @Success 200 {object} response.Envelope
// @Router /faculty/students [get]
func (h *FacultyHandler) Students(c *gin.Context) {
	page := portal.NewFacultyStudentsPage(h.deps)
	if err := page.Load(c.Request.Context(), c.Query("course")); err != nil {
		response.Error(c, err)
		return
	}
	meta := stateMeta(page.Roster.State())
	meta["course"] = page.Roster.State().Query
	meta["courses"] = page.Courses.Data()
	response.JSON(c, http.StatusOK, page.Filtered(c.Query("search")), meta)
}

// Classroom godoc
// @Summary Virtual classroom for a course
// @Tags Faculty
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /classroom/{courseId} [get]
func (h *FacultyHandler) Classroom(c *gin.Context) {
	classroom, err := h.deps.API.Classroom.Get(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classroom)
}

// ScheduleSession godoc
// @Summary Schedule a classroom session
// @Tags Faculty
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body models.SessionInput true "Session"
// @Success 201 {object} response.Envelope
// @Router /classroom/{courseId}/sessions [post]
func (h *FacultyHandler) ScheduleSession(c *gin.Context) {
	var in models.SessionInput
	if !bindJSON(c, &in) {
		return
	}
	session, err := h.deps.API.Classroom.CreateSession(c.Request.Context(), c.Param("courseId"), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// RecordGrade godoc
// @Summary Record a grade
// @Tags Faculty
// @Accept json
// @Produce json
// @Param payload body models.GradeInput true "Grade"
// @Success 201 {object} response.Envelope
// @Router /grades [post]
func (h *FacultyHandler) RecordGrade(c *gin.Context) {
	var in models.GradeInput
	if !bindJSON(c, &in) {
		return
	}
	grade, err := h.deps.API.Grades.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, grade)
}

// CourseGrades godoc
// @Summary Grades recorded for a course
// @Tags Faculty
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /grades/courses/{id} [get]
func (h *FacultyHandler) CourseGrades(c *gin.Context) {
	grades, err := h.deps.API.Grades.ForCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}
