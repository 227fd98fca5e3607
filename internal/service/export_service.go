package service

import (
	"strconv"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/pkg/export"
)

// ExportService renders portal rosters as downloadable documents.
type ExportService struct {
	exporter *export.Exporter
}

// NewExportService constructs ExportService. A nil exporter uses the CSV and PDF
// renderers.
func NewExportService(exporter *export.Exporter) *ExportService {
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &ExportService{exporter: exporter}
}

// Students renders the given students in format.
func (s *ExportService) Students(format export.Format, items []models.Student) ([]byte, error) {
	return s.exporter.Render(format, StudentRoster(items), "Students")
}

// Faculty renders the given faculty members in format.
func (s *ExportService) Faculty(format export.Format, items []models.Faculty) ([]byte, error) {
	return s.exporter.Render(format, FacultyRoster(items), "Faculty")
}

// StudentRoster maps students onto export columns.
func StudentRoster(items []models.Student) export.Dataset {
	rows := make([]map[string]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, map[string]string{
			"student_id": s.StudentID,
			"name":       s.Name,
			"email":      s.Email,
			"department": s.Department,
			"semester":   s.Semester.String(),
			"cgpa":       strconv.FormatFloat(s.CGPA, 'f', 2, 64),
		})
	}
	return export.Dataset{
		Columns: []export.Column{
			{Key: "student_id", Header: "Student ID"},
			{Key: "name", Header: "Name"},
			{Key: "email", Header: "Email"},
			{Key: "department", Header: "Department"},
			{Key: "semester", Header: "Semester"},
			{Key: "cgpa", Header: "CGPA"},
		},
		Rows: rows,
	}
}

// FacultyRoster maps faculty members onto export columns.
func FacultyRoster(items []models.Faculty) export.Dataset {
	rows := make([]map[string]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, map[string]string{
			"employee_id": f.EmployeeID,
			"name":        f.Name,
			"email":       f.Email,
			"department":  f.Department,
			"designation": f.Designation,
		})
	}
	return export.Dataset{
		Columns: []export.Column{
			{Key: "employee_id", Header: "Employee ID"},
			{Key: "name", Header: "Name"},
			{Key: "email", Header: "Email"},
			{Key: "department", Header: "Department"},
			{Key: "designation", Header: "Designation"},
		},
		Rows: rows,
	}
}
