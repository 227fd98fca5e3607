// Package export renders filtered portal views as downloadable CSV or PDF files.
package export

import (
	"strings"

	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

// Column maps a header to a row field.
type Column struct {
	Key    string
	Header string
}

// Dataset defines tabular export content.
type Dataset struct {
	Columns []Column
	Rows    []map[string]string
}

// Headers returns the column headers in order.
func (d Dataset) Headers() []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = col.Header
	}
	return out
}

// Record returns row's values in column order.
func (d Dataset) Record(row map[string]string) []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = row[col.Key]
	}
	return out
}

// Format is an export file type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts csv or pdf in any case.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", appErrors.ErrUnsupportedType
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}

// Renderer turns a dataset into file bytes.
type Renderer interface {
	Render(data Dataset, title string) ([]byte, error)
}

// Exporter dispatches to the renderer for each format.
type Exporter struct {
	renderers map[Format]Renderer
}

// NewExporter wires the CSV and PDF renderers.
func NewExporter() *Exporter {
	return &Exporter{renderers: map[Format]Renderer{
		FormatCSV: NewCSVExporter(),
		FormatPDF: NewPDFExporter(),
	}}
}

// Render produces the file for format.
func (e *Exporter) Render(format Format, data Dataset, title string) ([]byte, error) {
	renderer, ok := e.renderers[format]
	if !ok {
		return nil, appErrors.ErrUnsupportedType
	}
	return renderer.Render(data, title)
}

// Filename builds a download name such as students.csv.
func Filename(base string, format Format) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "export"
	}
	return base + "." + string(format)
}
