package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal/internal/models"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/export"
)

func TestExportStudentsCSV(t *testing.T) {
	svc := NewExportService(nil)
	out, err := svc.Students(export.FormatCSV, []models.Student{
		{StudentID: "CS-001", Name: "Ali Khan", Email: "ali@college.edu", Department: "Computer Science", Semester: "3", CGPA: 3.456},
		{StudentID: "CS-002", Name: "O'Brien, Pat", Email: "pat@college.edu", Department: "Computer Science", Semester: "5"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Student ID,Name,Email,Department,Semester,CGPA", lines[0])
	assert.Equal(t, "CS-001,Ali Khan,ali@college.edu,Computer Science,3,3.46", lines[1])
	assert.Equal(t, `CS-002,"O'Brien, Pat",pat@college.edu,Computer Science,5,0.00`, lines[2])
}

func TestExportFacultyPDF(t *testing.T) {
	out, err := NewExportService(nil).Faculty(export.FormatPDF, []models.Faculty{{EmployeeID: "EMP-1", Name: "Dr. Rao"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportEmptyRosterKeepsHeader(t *testing.T) {
	out, err := NewExportService(nil).Faculty(export.FormatCSV, nil)
	require.NoError(t, err)
	assert.Equal(t, "Employee ID,Name,Email,Department,Designation", strings.TrimSpace(string(out)))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := NewExportService(nil).Students(export.Format("xlsx"), nil)
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedType))
}
