package models

// Student is a learner as returned by the admin and course rosters.
type Student struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	StudentID  string     `json:"student_id"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	Semester   FlexString `json:"semester"`
	Phone      string     `json:"phone"`
	CGPA       float64    `json:"cgpa"`
	Attendance float64    `json:"attendance"`
}
