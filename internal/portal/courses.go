package portal

import (
	"context"
	"strings"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/view"
)

// CoursesPage is the course catalogue. The semester is sent to the backend; the
// search box filters locally.
type CoursesPage struct {
	*remote.Collection[string, models.Course]
	d Deps
}

// NewCoursesPage builds the page.
func NewCoursesPage(d Deps) *CoursesPage {
	fetch := func(ctx context.Context, semester string) ([]models.Course, error) {
		return d.API.Courses.List(ctx, apiclient.Query{"semester": semester})
	}
	return &CoursesPage{Collection: remote.NewCollection(fetch, d.options("courses")), d: d}
}

// Load fetches the courses offered in semester, or all of them when it is empty.
func (p *CoursesPage) Load(ctx context.Context, semester string) error {
	_, err := p.Collection.Load(ctx, strings.TrimSpace(semester))
	return err
}

// Filtered applies the search box.
func (p *CoursesPage) Filtered(search string) []models.Course {
	return p.View(view.CourseFilter{Search: search}.Predicate())
}

// Options lists the dropdown values present in the catalogue.
func (p *CoursesPage) Options() view.Options {
	return view.CourseOptions(p.Data())
}

// Create adds a course.
func (p *CoursesPage) Create(ctx context.Context, in models.CourseInput) error {
	return p.Mutate(ctx, "Course created successfully", func(ctx context.Context) error {
		_, err := p.d.API.Courses.Create(ctx, in)
		return err
	})
}

// Update edits a course.
func (p *CoursesPage) Update(ctx context.Context, id string, in models.CourseInput) error {
	return p.Mutate(ctx, "Course updated successfully", func(ctx context.Context) error {
		_, err := p.d.API.Courses.Update(ctx, id, in)
		return err
	})
}

// Delete removes a course once c confirms.
func (p *CoursesPage) Delete(ctx context.Context, c remote.Confirmer, id string) error {
	return p.MutateConfirmed(ctx, c, ConfirmDeleteCourse, "Course deleted successfully", func(ctx context.Context) error {
		return p.d.API.Courses.Delete(ctx, id)
	})
}

// StudentCoursesPage lists the signed-in student's enrolments for the selected
// semester. Switching semesters quickly never shows a previous selection's courses.
type StudentCoursesPage struct {
	*remote.Collection[string, models.Course]
}

// NewStudentCoursesPage builds the page.
func NewStudentCoursesPage(d Deps) *StudentCoursesPage {
	fetch := func(ctx context.Context, semester string) ([]models.Course, error) {
		return d.API.Students.Courses(ctx, semester)
	}
	return &StudentCoursesPage{Collection: remote.NewCollection(fetch, d.options("student_courses"))}
}

// SelectSemester loads the courses for semester; empty selects every semester.
func (p *StudentCoursesPage) SelectSemester(ctx context.Context, semester string) error {
	_, err := p.Load(ctx, strings.TrimSpace(semester))
	return err
}

// Filtered applies the search box.
func (p *StudentCoursesPage) Filtered(search string) []models.Course {
	return p.View(view.CourseFilter{Search: search}.Predicate())
}

// GradesPage is the student's grade report for a semester.
type GradesPage struct {
	*remote.Loader[string, *models.GradeSummary]
}

// NewGradesPage builds the page.
func NewGradesPage(d Deps) *GradesPage {
	fetch := func(ctx context.Context, semester string) (*models.GradeSummary, error) {
		return d.API.Students.Grades(ctx, semester)
	}
	return &GradesPage{Loader: remote.NewLoader(fetch, d.options("grades"))}
}

// SelectSemester loads the report for semester.
func (p *GradesPage) SelectSemester(ctx context.Context, semester string) error {
	_, err := p.Load(ctx, strings.TrimSpace(semester))
	return err
}

// Grades returns the loaded grades, never nil.
func (p *GradesPage) Grades() []models.Grade {
	summary := p.Data()
	if summary == nil || summary.Grades == nil {
		return []models.Grade{}
	}
	return summary.Grades
}

// StudentDashboard is the student's landing page.
type StudentDashboard struct {
	*remote.Loader[none, *models.StudentDashboard]
}

// NewStudentDashboard builds the page.
func NewStudentDashboard(d Deps) *StudentDashboard {
	fetch := remote.Static(func(ctx context.Context) (*models.StudentDashboard, error) {
		return d.API.Students.Dashboard(ctx)
	})
	return &StudentDashboard{Loader: remote.NewLoader(fetch, d.options("student_dashboard"))}
}

// Load fetches the dashboard.
func (p *StudentDashboard) Load(ctx context.Context) error {
	_, err := p.Loader.Load(ctx, none{})
	return err
}
