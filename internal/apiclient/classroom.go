package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// ClassroomAPI covers /classroom.
type ClassroomAPI struct {
	c *Client
}

// Get returns the virtual classroom for a course.
func (a *ClassroomAPI) Get(ctx context.Context, courseID string) (*models.Classroom, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}
	var room models.Classroom
	if err := a.c.sendInto(ctx, http.MethodGet, pathf("/classroom/%s", courseID), nil, &room); err != nil {
		return nil, err
	}
	room.Sessions = nonNil(room.Sessions)
	return &room, nil
}

// CreateSession schedules a session for a course.
func (a *ClassroomAPI) CreateSession(ctx context.Context, courseID string, in models.SessionInput) (*models.ClassSession, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var session models.ClassSession
	if err := a.c.sendResource(ctx, http.MethodPost, pathf("/classroom/%s/sessions", courseID), "session", in, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Session returns one session.
func (a *ClassroomAPI) Session(ctx context.Context, id string) (*models.ClassSession, error) {
	if err := requireID("session id", id); err != nil {
		return nil, err
	}
	var session models.ClassSession
	if err := a.c.sendResource(ctx, http.MethodGet, pathf("/classroom/sessions/%s", id), "session", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession edits a session.
func (a *ClassroomAPI) UpdateSession(ctx context.Context, id string, in models.SessionInput) (*models.ClassSession, error) {
	if err := requireID("session id", id); err != nil {
		return nil, err
	}
	if err := a.c.validate(in); err != nil {
		return nil, err
	}
	var session models.ClassSession
	if err := a.c.sendResource(ctx, http.MethodPut, pathf("/classroom/sessions/%s", id), "session", in, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession cancels a session.
func (a *ClassroomAPI) DeleteSession(ctx context.Context, id string) error {
	if err := requireID("session id", id); err != nil {
		return err
	}
	_, err := a.c.send(ctx, http.MethodDelete, pathf("/classroom/sessions/%s", id), nil)
	return err
}
