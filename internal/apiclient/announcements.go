package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// AnnouncementsAPI covers the audience-filtered /announcements feed.
type AnnouncementsAPI struct {
	c *Client
}

// List returns the caller's announcements. A limit of 0 requests the backend default.
func (a *AnnouncementsAPI) List(ctx context.Context, limit int) ([]models.Announcement, error) {
	var env struct {
		Announcements []models.Announcement `json:"announcements"`
	}
	endpoint := withQuery("/announcements", Query{"limit": limit})
	if err := a.c.sendInto(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Announcements), nil
}

// Get returns one announcement.
func (a *AnnouncementsAPI) Get(ctx context.Context, id string) (*models.Announcement, error) {
	if err := requireID("announcement id", id); err != nil {
		return nil, err
	}
	var ann models.Announcement
	if err := a.c.sendResource(ctx, http.MethodGet, pathf("/announcements/%s", id), "announcement", nil, &ann); err != nil {
		return nil, err
	}
	return &ann, nil
}
