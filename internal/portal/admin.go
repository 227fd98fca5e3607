package portal

import (
	"context"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/view"
)

// AdminDashboard shows institution totals and recent activity.
type AdminDashboard struct {
	*remote.Loader[none, *models.AdminDashboard]
}

// NewAdminDashboard builds the page.
func NewAdminDashboard(d Deps) *AdminDashboard {
	fetch := remote.Static(func(ctx context.Context) (*models.AdminDashboard, error) {
		return d.API.Admin.Dashboard(ctx)
	})
	return &AdminDashboard{Loader: remote.NewLoader(fetch, d.options("admin_dashboard"))}
}

// Load fetches the dashboard.
func (p *AdminDashboard) Load(ctx context.Context) error {
	_, err := p.Loader.Load(ctx, none{})
	return err
}

// StudentsPage is the admin student roster.
type StudentsPage struct {
	*remote.Collection[none, models.Student]
	d Deps
}

// NewStudentsPage builds the page.
func NewStudentsPage(d Deps) *StudentsPage {
	fetch := remote.Static(func(ctx context.Context) ([]models.Student, error) {
		return d.API.Admin.Students(ctx, nil)
	})
	return &StudentsPage{Collection: remote.NewCollection(fetch, d.options("students")), d: d}
}

// Load fetches the full roster.
func (p *StudentsPage) Load(ctx context.Context) error {
	_, err := p.Collection.Load(ctx, none{})
	return err
}

// Filtered applies the search box and dropdowns.
func (p *StudentsPage) Filtered(f view.RosterFilter) []models.Student {
	return p.View(f.StudentPredicate())
}

// Options lists the dropdown values present in the roster.
func (p *StudentsPage) Options() view.Options {
	return view.StudentOptions(p.Data())
}

// Delete removes a student once c confirms.
func (p *StudentsPage) Delete(ctx context.Context, c remote.Confirmer, id string) error {
	return p.MutateConfirmed(ctx, c, ConfirmDeleteStudent, "Student deleted successfully", func(ctx context.Context) error {
		return p.d.API.Admin.DeleteStudent(ctx, id)
	})
}

// FacultyPage is the admin faculty roster.
type FacultyPage struct {
	*remote.Collection[none, models.Faculty]
	d Deps
}

// NewFacultyPage builds the page.
func NewFacultyPage(d Deps) *FacultyPage {
	fetch := remote.Static(func(ctx context.Context) ([]models.Faculty, error) {
		return d.API.Admin.Faculty(ctx, nil)
	})
	return &FacultyPage{Collection: remote.NewCollection(fetch, d.options("faculty")), d: d}
}

// Load fetches the full roster.
func (p *FacultyPage) Load(ctx context.Context) error {
	_, err := p.Collection.Load(ctx, none{})
	return err
}

// Filtered applies the search box and department dropdown.
func (p *FacultyPage) Filtered(f view.RosterFilter) []models.Faculty {
	return p.View(f.FacultyPredicate())
}

// Options lists the departments present in the roster.
func (p *FacultyPage) Options() view.Options {
	return view.FacultyOptions(p.Data())
}

// Delete removes a faculty member once c confirms.
func (p *FacultyPage) Delete(ctx context.Context, c remote.Confirmer, id string) error {
	return p.MutateConfirmed(ctx, c, ConfirmDeleteFaculty, "Faculty member deleted successfully", func(ctx context.Context) error {
		return p.d.API.Admin.DeleteFaculty(ctx, id)
	})
}

// AnnouncementsPage manages announcements.
type AnnouncementsPage struct {
	*remote.Collection[none, models.Announcement]
	d Deps
}

// NewAnnouncementsPage builds the page.
func NewAnnouncementsPage(d Deps) *AnnouncementsPage {
	fetch := remote.Static(func(ctx context.Context) ([]models.Announcement, error) {
		return d.API.Admin.Announcements(ctx)
	})
	return &AnnouncementsPage{Collection: remote.NewCollection(fetch, d.options("announcements")), d: d}
}

// Load fetches every announcement.
func (p *AnnouncementsPage) Load(ctx context.Context) error {
	_, err := p.Collection.Load(ctx, none{})
	return err
}

// Filtered applies the filters and orders newest first.
func (p *AnnouncementsPage) Filtered(f view.AnnouncementFilter) []models.Announcement {
	items := p.View(f.Predicate())
	view.SortAnnouncements(items)
	return items
}

// Create publishes a new announcement.
func (p *AnnouncementsPage) Create(ctx context.Context, in models.AnnouncementInput) error {
	return p.Mutate(ctx, "Announcement created successfully", func(ctx context.Context) error {
		_, err := p.d.API.Admin.CreateAnnouncement(ctx, in)
		return err
	})
}

// Update edits an existing announcement.
func (p *AnnouncementsPage) Update(ctx context.Context, id string, in models.AnnouncementInput) error {
	return p.Mutate(ctx, "Announcement updated successfully", func(ctx context.Context) error {
		_, err := p.d.API.Admin.UpdateAnnouncement(ctx, id, in)
		return err
	})
}

// Delete removes an announcement once c confirms.
func (p *AnnouncementsPage) Delete(ctx context.Context, c remote.Confirmer, id string) error {
	return p.MutateConfirmed(ctx, c, ConfirmDeleteAnnouncement, "Announcement deleted successfully", func(ctx context.Context) error {
		return p.d.API.Admin.DeleteAnnouncement(ctx, id)
	})
}
