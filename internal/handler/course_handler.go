package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/view"
	"github.com/noah-isme/college-portal/pkg/response"
)

// CourseHandler exposes the course catalogue.
type CourseHandler struct {
	deps portal.Deps
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(deps portal.Deps) *CourseHandler {
	return &CourseHandler{deps: deps}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param semester query string false "Semester"
// @Param search query string false "Name, code or instructor"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	var filter view.CourseFilter
	if !bindQuery(c, &filter) {
		return
	}
	page := portal.NewCoursesPage(h.deps)
	if err := page.Load(c.Request.Context(), filter.Semester); err != nil {
		response.Error(c, err)
		return
	}
	meta := stateMeta(page.State())
	meta["total"] = page.Len()
	meta["options"] = page.Options()
	response.JSON(c, http.StatusOK, page.Filtered(filter.Search), meta)
}

// Get godoc
// @Summary Course detail
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.deps.API.Courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.CourseInput true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var in models.CourseInput
	if !bindJSON(c, &in) {
		return
	}
	page := portal.NewCoursesPage(h.deps)
	if err := page.Create(c.Request.Context(), in); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, page.Data(), stateMeta(page.State()))
}

// Update godoc
// @Summary Edit a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body models.CourseInput true "Course payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var in models.CourseInput
	if !bindJSON(c, &in) {
		return
	}
	page := portal.NewCoursesPage(h.deps)
	if err := page.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Delete godoc
// @Summary Delete a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	page := portal.NewCoursesPage(h.deps)
	if err := page.Delete(c.Request.Context(), confirmation(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Data(), stateMeta(page.State()))
}

// Students godoc
// @Summary Course roster
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/students [get]
func (h *CourseHandler) Students(c *gin.Context) {
	students, err := h.deps.API.Courses.Students(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, map[string]interface{}{"total": len(students)})
}
