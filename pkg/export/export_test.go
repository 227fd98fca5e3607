package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

func sampleDataset() Dataset {
	return Dataset{
		Columns: []Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "credits", Header: "Credits"},
		},
		Rows: []map[string]string{
			{"name": "Algorithms", "code": "CS-201", "credits": "4"},
			{"name": "Ethics, Law", "code": "HU-110"},
		},
	}
}

func TestCSVRendersInColumnOrder(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset(), "ignored")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Code,Name,Credits", lines[0])
	assert.Equal(t, "CS-201,Algorithms,4", lines[1])
	assert.Equal(t, `HU-110,"Ethics, Law",`, lines[2])
}

func TestRenderRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{}, "")
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestPDFRendersDocument(t *testing.T) {
	out, err := NewExporter().Render(FormatPDF, sampleDataset(), "Courses")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFPaginatesLongRosters(t *testing.T) {
	data := sampleDataset()
	for i := 0; i < 120; i++ {
		data.Rows = append(data.Rows, map[string]string{"code": "CS-999", "name": "Seminar"})
	}
	out, err := NewPDFExporter().Render(data, "Courses")
	require.NoError(t, err)
	assert.True(t, bytes.Contains(out, []byte("/Count ")))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedType))

	_, err = NewExporter().Render(Format("xlsx"), sampleDataset(), "")
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedType))
}

func TestFilenameAndTruncate(t *testing.T) {
	assert.Equal(t, "students.csv", Filename("students", FormatCSV))
	assert.Equal(t, "export.pdf", Filename(" ", FormatPDF))
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 16))
}
