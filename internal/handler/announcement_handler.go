package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	"github.com/noah-isme/college-portal/internal/view"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/response"
)

// AnnouncementHandler exposes announcement management and the notice board.
type AnnouncementHandler struct {
	deps portal.Deps
}

// NewAnnouncementHandler constructs AnnouncementHandler.
func NewAnnouncementHandler(deps portal.Deps) *AnnouncementHandler {
	return &AnnouncementHandler{deps: deps}
}

// List godoc
// @Summary List announcements (admin)
// @Tags Announcements
// @Produce json
// @Param search query string false "Title or content"
// @Param priority query string false "urgent, high, normal or low"
// @Param audience query string false "all, students or faculty"
// @Success 200 {object} response.Envelope
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	var filter view.AnnouncementFilter
	if !bindQuery(c, &filter) {
		return
	}
	page := portal.NewAnnouncementsPage(h.deps)
	if err := page.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	meta := stateMeta(page.State())
	meta["total"] = page.Len()
	response.JSON(c, http.StatusOK, page.Filtered(filter), meta)
}

// Create godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body models.AnnouncementInput true "Announcement payload; priority defaults to normal, audience to all"
// @Success 201 {object} response.Envelope
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var in models.AnnouncementInput
	if !bindJSON(c, &in) {
		return
	}
	page := portal.NewAnnouncementsPage(h.deps)
	if err := page.Create(c.Request.Context(), in); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, page.Filtered(view.AnnouncementFilter{}), stateMeta(page.State()))
}

// Update godoc
// @Summary Edit an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param payload body models.AnnouncementInput true "Announcement payload"
// @Success 200 {object} response.Envelope
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var in models.AnnouncementInput
	if !bindJSON(c, &in) {
		return
	}
	page := portal.NewAnnouncementsPage(h.deps)
	if err := page.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Filtered(view.AnnouncementFilter{}), stateMeta(page.State()))
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.Envelope
// @Failure 428 {object} response.Envelope
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	page := portal.NewAnnouncementsPage(h.deps)
	if err := page.Delete(c.Request.Context(), confirmation(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Filtered(view.AnnouncementFilter{}), stateMeta(page.State()))
}

// NoticeBoard godoc
// @Summary Recent announcements for any signed-in user
// @Tags Announcements
// @Produce json
// @Param limit query int false "Maximum announcements"
// @Param priority query string false "Priority"
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) NoticeBoard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive number"))
			return
		}
		limit = parsed
	}
	var filter view.AnnouncementFilter
	if !bindQuery(c, &filter) {
		return
	}
	page := portal.NewNoticeBoard(h.deps)
	if err := page.Load(c.Request.Context(), limit); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page.Filtered(filter), stateMeta(page.State()))
}

// Get godoc
// @Summary Read one announcement
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Envelope
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	announcement, err := h.deps.API.Announcements.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, announcement)
}
