package models

import (
	"encoding/json"
	"time"
)

// Schedule describes when a course meets.
type Schedule struct {
	Days []string `json:"days"`
	Time string   `json:"time"`
}

// Assignment is coursework attached to a course.
type Assignment struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	MaxScore    float64   `json:"max_score,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// Course is an offered course. Instructor may arrive populated or as a bare id.
type Course struct {
	ID            string       `json:"_id"`
	Name          string       `json:"name"`
	Code          string       `json:"code"`
	Description   string       `json:"description,omitempty"`
	Department    string       `json:"department,omitempty"`
	Instructor    Ref          `json:"instructor_id"`
	Semester      FlexString   `json:"semester"`
	Credits       int          `json:"credits"`
	IsVirtual     bool         `json:"is_virtual"`
	Schedule      Schedule     `json:"schedule"`
	Progress      float64      `json:"progress"`
	Assignments   []Assignment `json:"assignments"`
	Prerequisites []string     `json:"prerequisites"`
}

// UnmarshalJSON folds the id/_id and credits/credit_hours aliases.
func (c *Course) UnmarshalJSON(data []byte) error {
	type plain Course
	var aux struct {
		plain
		AltID       string `json:"id"`
		CreditHours int    `json:"credit_hours"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = Course(aux.plain)
	c.ID = firstNonEmpty(c.ID, aux.AltID)
	if c.Credits == 0 {
		c.Credits = aux.CreditHours
	}
	if c.Assignments == nil {
		c.Assignments = []Assignment{}
	}
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}
	return nil
}

// TaughtBy reports whether userID is the course instructor.
func (c Course) TaughtBy(userID string) bool {
	return userID != "" && c.Instructor.ID == userID
}

// CourseInput is the create/update payload for a course.
type CourseInput struct {
	Name          string    `json:"name" validate:"required"`
	Code          string    `json:"code" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Department    string    `json:"department,omitempty"`
	InstructorID  string    `json:"instructor_id,omitempty"`
	Semester      string    `json:"semester,omitempty"`
	Credits       int       `json:"credits" validate:"gte=0"`
	IsVirtual     bool      `json:"is_virtual"`
	Schedule      *Schedule `json:"schedule,omitempty"`
	Prerequisites []string  `json:"prerequisites,omitempty"`
}
