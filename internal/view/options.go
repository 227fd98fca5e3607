package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/noah-isme/college-portal/internal/models"
)

// Options are the distinct values offered by a dropdown.
type Options struct {
	Departments []string `json:"departments"`
	Semesters   []string `json:"semesters"`
}

// Departments returns the distinct, sorted department values found in items.
func Departments[T any](items []T, department func(T) string) []string {
	return distinct(collect(items, department))
}

// Semesters returns the distinct semester values, numeric ones in numeric order.
func Semesters[T any](items []T, semester func(T) string) []string {
	return distinctSemesters(collect(items, semester))
}

// StudentOptions derives dropdown values from a student roster.
func StudentOptions(items []models.Student) Options {
	return Options{
		Departments: Departments(items, func(s models.Student) string { return s.Department }),
		Semesters:   Semesters(items, func(s models.Student) string { return s.Semester.String() }),
	}
}

// FacultyOptions derives dropdown values from a faculty roster.
func FacultyOptions(items []models.Faculty) Options {
	return Options{
		Departments: Departments(items, func(f models.Faculty) string { return f.Department }),
		Semesters:   []string{},
	}
}

// CourseOptions derives dropdown values from a course list.
func CourseOptions(items []models.Course) Options {
	return Options{
		Departments: Departments(items, func(c models.Course) string { return c.Department }),
		Semesters:   Semesters(items, func(c models.Course) string { return c.Semester.String() }),
	}
}

func collect[T any](items []T, field func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, field(item))
	}
	return out
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// distinctSemesters sorts numerically where possible so "10" follows "9".
func distinctSemesters(values []string) []string {
	out := distinct(values)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i])
		b, errB := strconv.Atoi(out[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return out[i] < out[j]
		}
	})
	return out
}
