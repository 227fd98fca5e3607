package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseDecodesAliases(t *testing.T) {
	var populated Course
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "c-1",
		"name": "Data Structures",
		"code": "CS201",
		"instructor_id": {"_id": "f-9", "name": "Dr. Rao"},
		"semester": 3,
		"credit_hours": 4,
		"schedule": {"days": ["Mon", "Wed"], "time": "10:00"}
	}`), &populated))

	assert.Equal(t, "c-1", populated.ID)
	assert.Equal(t, "f-9", populated.Instructor.ID)
	assert.Equal(t, "Dr. Rao", populated.Instructor.Name)
	assert.Equal(t, FlexString("3"), populated.Semester)
	assert.Equal(t, 4, populated.Credits)
	assert.Equal(t, []string{"Mon", "Wed"}, populated.Schedule.Days)
	assert.NotNil(t, populated.Assignments)
	assert.NotNil(t, populated.Prerequisites)
	assert.True(t, populated.TaughtBy("f-9"))

	var bare Course
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"c-2","instructor_id":"f-1","semester":"5","credits":3,"credit_hours":9}`), &bare))
	assert.Equal(t, "c-2", bare.ID)
	assert.Equal(t, "f-1", bare.Instructor.ID)
	assert.Equal(t, 5, bare.Semester.Int())
	assert.Equal(t, 3, bare.Credits)
	assert.False(t, bare.TaughtBy(""))
}

func TestFacultyEmployeeIDAliases(t *testing.T) {
	var snake, camel Faculty
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"1","employee_id":"EMP-1"}`), &snake))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"2","employeeId":"EMP-2","designation":"Professor"}`), &camel))

	assert.Equal(t, "EMP-1", snake.EmployeeID)
	assert.Equal(t, "EMP-2", camel.EmployeeID)
	assert.Equal(t, "Professor", camel.Designation)
}

func TestRefNull(t *testing.T) {
	var a Announcement
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"a","author_id":null,"priority":"urgent"}`), &a))
	assert.True(t, a.Author.IsZero())
	assert.Equal(t, 0, a.Priority.Rank())
}

func TestAnnouncementInputDefaults(t *testing.T) {
	in := AnnouncementInput{Title: "  Exams ", Content: "Week 10", Priority: "HIGH"}.WithDefaults()

	assert.Equal(t, "Exams", in.Title)
	assert.Equal(t, PriorityHigh, in.Priority)
	assert.Equal(t, AudienceAll, in.TargetAudience)

	in = AnnouncementInput{}.WithDefaults()
	assert.Equal(t, PriorityNormal, in.Priority)
}

func TestPriorityRankUnknownLast(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), AnnouncementPriority("whenever").Rank())
}
