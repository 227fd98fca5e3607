package portal

import (
	"context"
	"errors"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/view"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

// FacultyDashboard shows the courses the signed-in instructor teaches and recent
// announcements.
type FacultyDashboard struct {
	*remote.Loader[none, *models.FacultyDashboard]
}

// NewFacultyDashboard builds the page.
func NewFacultyDashboard(d Deps) *FacultyDashboard {
	fetch := remote.Static(func(ctx context.Context) (*models.FacultyDashboard, error) {
		identity, err := ResolveIdentity(ctx, d.Tokens, d.API.Auth)
		if err != nil {
			return nil, err
		}
		courses, err := myCourses(ctx, d.API, identity.UserID)
		if err != nil {
			return nil, err
		}
		announcements, err := d.API.Announcements.List(ctx, d.recentLimit())
		if err != nil {
			return nil, err
		}
		view.SortAnnouncements(announcements)
		return &models.FacultyDashboard{
			Identity:      identity,
			Courses:       courses,
			Announcements: view.Limit(announcements, d.recentLimit()),
		}, nil
	})
	return &FacultyDashboard{Loader: remote.NewLoader(fetch, d.options("faculty_dashboard"))}
}

// Load fetches the dashboard.
func (p *FacultyDashboard) Load(ctx context.Context) error {
	_, err := p.Loader.Load(ctx, none{})
	return err
}

// FacultyStudentsPage lets an instructor pick one of their courses and browse its
// roster.
type FacultyStudentsPage struct {
	Courses *remote.Collection[none, models.Course]
	Roster  *remote.Collection[string, models.Student]
}

// NewFacultyStudentsPage builds the page.
func NewFacultyStudentsPage(d Deps) *FacultyStudentsPage {
	courses := remote.Static(func(ctx context.Context) ([]models.Course, error) {
		identity, err := ResolveIdentity(ctx, d.Tokens, d.API.Auth)
		if err != nil {
			return nil, err
		}
		return myCourses(ctx, d.API, identity.UserID)
	})
	roster := func(ctx context.Context, courseID string) ([]models.Student, error) {
		if courseID == "" {
			return []models.Student{}, nil
		}
		return d.API.Courses.Students(ctx, courseID)
	}
	return &FacultyStudentsPage{
		Courses: remote.NewCollection(courses, d.options("faculty_courses")),
		Roster:  remote.NewCollection(roster, d.options("course_roster")),
	}
}

// Load fetches the instructor's courses and selects the first one when none is
// given. A superseded call leaves the roster to the newer one.
func (p *FacultyStudentsPage) Load(ctx context.Context, courseID string) error {
	courses, err := p.Courses.Load(ctx, none{})
	if errors.Is(err, appErrors.ErrSuperseded) {
		return err
	}
	if err != nil {
		_, _ = p.Roster.Load(ctx, "")
		return err
	}
	if courseID == "" && len(courses) > 0 {
		courseID = courses[0].ID
	}
	return p.SelectCourse(ctx, courseID)
}

// SelectCourse switches the roster to courseID.
func (p *FacultyStudentsPage) SelectCourse(ctx context.Context, courseID string) error {
	_, err := p.Roster.Load(ctx, courseID)
	return err
}

// Filtered applies the search box to the selected roster.
func (p *FacultyStudentsPage) Filtered(search string) []models.Student {
	return p.Roster.View(view.RosterFilter{Search: search}.StudentPredicate())
}

func myCourses(ctx context.Context, api *apiclient.Client, userID string) ([]models.Course, error) {
	courses, err := api.Courses.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return view.Apply(courses, view.InstructedBy(userID)), nil
}
