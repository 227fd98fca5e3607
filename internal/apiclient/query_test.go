package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/college-portal/internal/models"
)

func TestQueryOmitsFalsyValues(t *testing.T) {
	var nilPtr *string
	q := Query{
		"search":     "",
		"department": "Computer Science",
		"semester":   0,
		"active":     false,
		"missing":    nil,
		"ptr":        nilPtr,
		"tags":       []string{},
		"year":       2024,
		"virtual":    true,
	}

	assert.Equal(t, "department=Computer+Science&virtual=true&year=2024", q.Encode())
}

func TestQueryEncodesSpecialCharacters(t *testing.T) {
	q := Query{"search": "o'brien & co", "ids": []string{"a", "", "b"}}
	assert.Equal(t, "ids=a%2Cb&search=o%27brien+%26+co", q.Encode())
}

func TestQueryStringers(t *testing.T) {
	assert.Equal(t, "semester=5", Query{"semester": models.FlexString("5")}.Encode())
	assert.Equal(t, "", Query{"semester": models.FlexString("")}.Encode())
	assert.Equal(t, "role=faculty", Query{"role": models.RoleFaculty}.Encode())
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/courses", withQuery("/courses", nil))
	assert.Equal(t, "/courses?semester=1", withQuery("/courses", Query{"semester": "1"}))
}
