package models

import "time"

// Grade is a score recorded against an assignment or course.
type Grade struct {
	ID            string     `json:"_id"`
	Student       Ref        `json:"student_id"`
	Course        Ref        `json:"course_id"`
	Assignment    Ref        `json:"assignment_id"`
	Score         float64    `json:"score"`
	MaxScore      float64    `json:"max_score"`
	Grade         string     `json:"grade"`
	GradePoint    float64    `json:"grade_point"`
	Semester      FlexString `json:"semester"`
	Feedback      string     `json:"feedback,omitempty"`
	GradedAt      time.Time  `json:"graded_at"`
	CourseName    string     `json:"course_name,omitempty"`
	CourseCode    string     `json:"course_code,omitempty"`
	CreditsEarned int        `json:"credits,omitempty"`
}

// GradeInput records or updates a grade.
type GradeInput struct {
	StudentID    string  `json:"student_id" validate:"required"`
	AssignmentID string  `json:"assignment_id,omitempty"`
	CourseID     string  `json:"course_id,omitempty"`
	Score        float64 `json:"score" validate:"gte=0"`
	MaxScore     float64 `json:"max_score,omitempty" validate:"omitempty,gtefield=Score"`
	Feedback     string  `json:"feedback,omitempty"`
}

// GradeSummary is the student-facing grade report.
type GradeSummary struct {
	Grades []Grade `json:"grades"`
	GPA    float64 `json:"gpa"`
	CGPA   float64 `json:"cgpa"`
}

// Submission is a student's assignment hand-in.
type Submission struct {
	ID          string    `json:"_id"`
	Assignment  Ref       `json:"assignment_id"`
	Student     Ref       `json:"student_id"`
	Content     string    `json:"content"`
	FileURL     string    `json:"file_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status,omitempty"`
}

// SubmissionInput hands in an assignment.
type SubmissionInput struct {
	Content string `json:"content" validate:"required_without=FileURL"`
	FileURL string `json:"file_url,omitempty" validate:"omitempty,url"`
}
