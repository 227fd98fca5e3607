package models

import "time"

// ClassSession is one virtual classroom meeting.
type ClassSession struct {
	ID          string    `json:"_id"`
	Course      Ref       `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	MeetingURL  string    `json:"meeting_url,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// SessionInput schedules or edits a session.
type SessionInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	MeetingURL  string    `json:"meeting_url,omitempty" validate:"omitempty,url"`
}

// Classroom is the virtual classroom view of a course.
type Classroom struct {
	Course   Course         `json:"course"`
	Sessions []ClassSession `json:"sessions"`
}
