package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// CourseAPI covers /courses.
type CourseAPI struct {
	c *Client
}

// List returns courses matching the filter object.
func (a *CourseAPI) List(ctx context.Context, filters Query) ([]models.Course, error) {
	var env struct {
		Courses []models.Course `json:"courses"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, withQuery("/courses", filters), nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Courses), nil
}

// Get returns one course.
func (a *CourseAPI) Get(ctx context.Context, id string) (*models.Course, error) {
	if err := requireID("course id", id); err != nil {
		return nil, err
	}
	var course models.Course
	if err := a.c.sendResource(ctx, http.MethodGet, pathf("/courses/%s", id), "course", nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create adds a course.
func (a *CourseAPI) Create(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var course models.Course
	if err := a.c.sendResource(ctx, http.MethodPost, "/courses", "course", in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Update replaces a course.
func (a *CourseAPI) Update(ctx context.Context, id string, in models.CourseInput) (*models.Course, error) {
	if err := requireID("course id", id); err != nil {
		return nil, err
	}
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var course models.Course
	if err := a.c.sendResource(ctx, http.MethodPut, pathf("/courses/%s", id), "course", in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Delete removes a course.
func (a *CourseAPI) Delete(ctx context.Context, id string) error {
	if err := requireID("course id", id); err != nil {
		return err
	}
	_, err := a.c.send(ctx, http.MethodDelete, pathf("/courses/%s", id), nil)
	return err
}

// Students lists the roster of a course.
func (a *CourseAPI) Students(ctx context.Context, id string) ([]models.Student, error) {
	if err := requireID("course id", id); err != nil {
		return nil, err
	}
	var env struct {
		Students []models.Student `json:"students"`
	}
	if err := a.c.sendInto(ctx, http.MethodGet, pathf("/courses/%s/students", id), nil, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Students), nil
}
