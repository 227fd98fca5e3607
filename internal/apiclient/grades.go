package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// GradesAPI covers /grades.
type GradesAPI struct {
	c *Client
}

// ForAssignment lists grades recorded for an assignment.
func (a *GradesAPI) ForAssignment(ctx context.Context, assignmentID string) ([]models.Grade, error) {
	if err := requireID("assignment id", assignmentID); err != nil {
		return nil, err
	}
	return a.list(ctx, pathf("/grades/assignments/%s", assignmentID))
}

// ForCourse lists grades recorded for a course.
func (a *GradesAPI) ForCourse(ctx context.Context, courseID string) ([]models.Grade, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}
	return a.list(ctx, pathf("/grades/courses/%s", courseID))
}

// Create records a grade.
func (a *GradesAPI) Create(ctx context.Context, in models.GradeInput) (*models.Grade, error) {
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var grade models.Grade
	if err := a.c.sendResource(ctx, http.MethodPost, "/grades", "grade", in, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// Update changes a recorded grade.
func (a *GradesAPI) Update(ctx context.Context, id string, in models.GradeInput) (*models.Grade, error) {
	if err := requireID("grade id", id); err != nil {
		return nil, err
	}
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var grade models.Grade
	if err := a.c.sendResource(ctx, http.MethodPut, pathf("/grades/%s", id), "grade", in, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (a *GradesAPI) list(ctx context.Context, endpoint string) ([]models.Grade, error) {
	var env struct {
		Grades []models.Grade `json:"grades"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Grades), nil
}
