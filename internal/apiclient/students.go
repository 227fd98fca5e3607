package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// StudentAPI covers the student-facing /students endpoints.
type StudentAPI struct {
	c *Client
}

// Dashboard returns the signed-in student's dashboard.
func (s *StudentAPI) Dashboard(ctx context.Context) (*models.StudentDashboard, error) {
	var dash models.StudentDashboard
	if err := s.c.sendResource(ctx, http.MethodGet, "/students/dashboard", "dashboard", nil, &dash); err != nil {
		return nil, err
	}
	dash.Normalize()
	return &dash, nil
}

// Courses lists enrolled courses, optionally for one semester.
func (s *StudentAPI) Courses(ctx context.Context, semester string) ([]models.Course, error) {
	var env struct {
		Courses []models.Course `json:"courses"`
	}
	endpoint := withQuery("/students/courses", Query{"semester": semester})
	if err := s.c.sendInto(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Courses), nil
}

// Course returns one enrolled course.
func (s *StudentAPI) Course(ctx context.Context, id string) (*models.Course, error) {
	if err := requireID("course id", id); err != nil {
		return nil, err
	}
	var course models.Course
	if err := s.c.sendResource(ctx, http.MethodGet, pathf("/students/courses/%s", id), "course", nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Grades returns the grade report, optionally for one semester.
func (s *StudentAPI) Grades(ctx context.Context, semester string) (*models.GradeSummary, error) {
	var summary models.GradeSummary
	endpoint := withQuery("/students/grades", Query{"semester": semester})
	if err := s.c.sendInto(ctx, http.MethodGet, endpoint, nil, &summary); err != nil {
		return nil, err
	}
	summary.Grades = nonNil(summary.Grades)
	return &summary, nil
}

// SubmitAssignment hands in an assignment.
func (s *StudentAPI) SubmitAssignment(ctx context.Context, assignmentID string, in models.SubmissionInput) (*models.Submission, error) {
	if err := requireID("assignment id", assignmentID); err != nil {
		return nil, err
	}
	if err := s.c.validate(in); err != nil {
		return nil, err
	}
	var sub models.Submission
	endpoint := pathf("/students/assignments/%s/submit", assignmentID)
	if err := s.c.sendResource(ctx, http.MethodPost, endpoint, "submission", in, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
