// Package view derives the in-memory projections pages render: search, dropdown
// filters and ordering. Everything here is pure and synchronous.
package view

import (
	"sort"
	"strings"

	"github.com/noah-isme/college-portal/internal/models"
)

// Predicate selects items for a projection.
type Predicate[T any] func(T) bool

// All combines predicates with logical AND. Nil predicates are ignored.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items matching pred, never nil.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// MatchesSearch reports whether any field contains term, case-insensitively. An
// empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesExact compares dropdown selections. An empty selection matches everything.
func matchesExact(selected, value string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return true
	}
	return strings.EqualFold(selected, strings.TrimSpace(value))
}

// RosterFilter is the search box plus department and semester dropdowns shared by the
// student and faculty screens.
type RosterFilter struct {
	Search     string `form:"search" json:"search,omitempty"`
	Department string `form:"department" json:"department,omitempty"`
	Semester   string `form:"semester" json:"semester,omitempty"`
}

// StudentPredicate searches name, student id and email.
func (f RosterFilter) StudentPredicate() Predicate[models.Student] {
	return func(s models.Student) bool {
		return MatchesSearch(f.Search, s.Name, s.StudentID, s.Email) &&
			matchesExact(f.Department, s.Department) &&
			matchesExact(f.Semester, s.Semester.String())
	}
}

// FacultyPredicate searches name, employee id, email and designation. Faculty carry
// no semester, so that dropdown is ignored.
func (f RosterFilter) FacultyPredicate() Predicate[models.Faculty] {
	return func(m models.Faculty) bool {
		return MatchesSearch(f.Search, m.Name, m.EmployeeID, m.Email, m.Designation) &&
			matchesExact(f.Department, m.Department)
	}
}

// Students filters a student roster.
func Students(items []models.Student, f RosterFilter) []models.Student {
	return Apply(items, f.StudentPredicate())
}

// Faculty filters a faculty roster.
func Faculty(items []models.Faculty, f RosterFilter) []models.Faculty {
	return Apply(items, f.FacultyPredicate())
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Search   string `form:"search" json:"search,omitempty"`
	Semester string `form:"semester" json:"semester,omitempty"`
}

// Predicate searches name and code and matches the semester exactly.
func (f CourseFilter) Predicate() Predicate[models.Course] {
	return func(c models.Course) bool {
		return MatchesSearch(f.Search, c.Name, c.Code, c.Instructor.Name) &&
			matchesExact(f.Semester, c.Semester.String())
	}
}

// InstructedBy keeps the courses taught by userID.
func InstructedBy(userID string) Predicate[models.Course] {
	return func(c models.Course) bool {
		return c.TaughtBy(userID)
	}
}

// Courses filters a course list.
func Courses(items []models.Course, f CourseFilter) []models.Course {
	return Apply(items, f.Predicate())
}

// AnnouncementFilter narrows the announcement board.
type AnnouncementFilter struct {
	Search   string `form:"search" json:"search,omitempty"`
	Priority string `form:"priority" json:"priority,omitempty"`
	Audience string `form:"audience" json:"audience,omitempty"`
}

// Predicate searches title and content.
func (f AnnouncementFilter) Predicate() Predicate[models.Announcement] {
	return func(a models.Announcement) bool {
		return MatchesSearch(f.Search, a.Title, a.Content) &&
			matchesExact(f.Priority, string(a.Priority)) &&
			matchesExact(f.Audience, string(a.TargetAudience))
	}
}

// Announcements filters and orders announcements newest first.
func Announcements(items []models.Announcement, f AnnouncementFilter) []models.Announcement {
	out := Apply(items, f.Predicate())
	SortAnnouncements(out)
	return out
}

// SortAnnouncements orders newest first; announcements created at the same instant
// are ordered by priority.
func SortAnnouncements(items []models.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
}

// Limit truncates items to at most n entries. n <= 0 keeps everything.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
