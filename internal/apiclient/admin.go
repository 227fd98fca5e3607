package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// AdminAPI covers /admin.
type AdminAPI struct {
	c *Client
}

// Dashboard returns the admin dashboard counters.
func (a *AdminAPI) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	var dash models.AdminDashboard
	if err := a.c.sendResource(ctx, http.MethodGet, "/admin/dashboard", "dashboard", nil, &dash); err != nil {
		return nil, err
	}
	dash.Normalize()
	return &dash, nil
}

// Students lists students matching the filter object.
func (a *AdminAPI) Students(ctx context.Context, filters Query) ([]models.Student, error) {
	var env struct {
		Students []models.Student `json:"students"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, withQuery("/admin/students", filters), nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Students), nil
}

// Faculty lists faculty matching the filter object.
func (a *AdminAPI) Faculty(ctx context.Context, filters Query) ([]models.Faculty, error) {
	var env struct {
		Faculty []models.Faculty `json:"faculty"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, withQuery("/admin/faculty", filters), nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Faculty), nil
}

// Announcements lists every announcement, regardless of audience.
func (a *AdminAPI) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var env struct {
		Announcements []models.Announcement `json:"announcements"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, "/admin/announcements", nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Announcements), nil
}

// CreateAnnouncement publishes an announcement.
func (a *AdminAPI) CreateAnnouncement(ctx context.Context, in models.AnnouncementInput) (*models.Announcement, error) {
	in = in.WithDefaults()
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var ann models.Announcement
	if err := a.c.sendResource(ctx, http.MethodPost, "/admin/announcements", "announcement", in, &ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

// UpdateAnnouncement edits an announcement.
func (a *AdminAPI) UpdateAnnouncement(ctx context.Context, id string, in models.AnnouncementInput) (*models.Announcement, error) {
	if err := requireID("announcement id", id); err != nil {
		return nil, err
	}
	in = in.WithDefaults()
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var ann models.Announcement
	if err := a.c.sendResource(ctx, http.MethodPut, pathf("/admin/announcements/%s", id), "announcement", in, &ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

// DeleteAnnouncement removes an announcement. Repeated calls are re-sent as-is.
func (a *AdminAPI) DeleteAnnouncement(ctx context.Context, id string) error {
	return a.delete(ctx, "announcement id", "/admin/announcements/%s", id)
}

// DeleteStudent removes a student account.
func (a *AdminAPI) DeleteStudent(ctx context.Context, id string) error {
	return a.delete(ctx, "student id", "/admin/students/%s", id)
}

// DeleteFaculty removes a faculty account.
func (a *AdminAPI) DeleteFaculty(ctx context.Context, id string) error {
	return a.delete(ctx, "faculty id", "/admin/faculty/%s", id)
}

func (a *AdminAPI) delete(ctx context.Context, name, format, id string) error {
	if err := requireID(name, id); err != nil {
		return err
	}
	_, err := a.c.send(ctx, http.MethodDelete, pathf(format, id), nil)
	return err
}
