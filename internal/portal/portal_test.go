package portal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/view"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

type backend struct {
	*gin.Engine
	mu    sync.Mutex
	calls []string
}

func newBackend(t *testing.T) (*backend, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	b := &backend{Engine: gin.New()}
	b.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.calls = append(b.calls, c.Request.Method+" "+c.Request.URL.RequestURI())
		b.mu.Unlock()
		c.Next()
	})
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	tokens := tokenstore.Static("opaque-token")
	api := apiclient.New(apiclient.Options{BaseURL: srv.URL + "/api", Tokens: tokens})
	return b, Deps{API: api, Tokens: tokens}
}

func (b *backend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestStudentCoursesIgnoresStaleSemester(t *testing.T) {
	b, deps := newBackend(t)
	arrivedA := make(chan struct{})
	releaseA := make(chan struct{})
	b.GET("/api/students/courses", func(c *gin.Context) {
		semester := c.Query("semester")
		if semester == "1" {
			close(arrivedA)
			select {
			case <-releaseA:
			case <-c.Request.Context().Done():
			}
		}
		c.JSON(http.StatusOK, gin.H{"courses": []gin.H{{"_id": "c-" + semester, "name": "Semester " + semester, "semester": semester}}})
	})

	page := NewStudentCoursesPage(deps)
	doneA := make(chan error, 1)
	go func() { doneA <- page.SelectSemester(context.Background(), "1") }()
	<-arrivedA

	require.NoError(t, page.SelectSemester(context.Background(), "2"))
	close(releaseA)
	errA := <-doneA
	assert.True(t, errors.Is(errA, appErrors.ErrSuperseded))

	state := page.State()
	assert.Equal(t, "2", state.Query)
	require.Len(t, state.Data, 1)
	assert.Equal(t, "c-2", state.Data[0].ID)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestStudentsPageFilterAndDelete(t *testing.T) {
	b, deps := newBackend(t)
	var mu sync.Mutex
	students := []gin.H{
		{"_id": "s1", "name": "Ali Khan", "department": "Computer Science", "semester": 3},
		{"_id": "s2", "name": "Bob Stone", "department": "Mechanical", "semester": 5},
	}
	b.GET("/api/admin/students", func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"students": students})
	})
	b.DELETE("/api/admin/students/:id", func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		students = students[1:]
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})

	page := NewStudentsPage(deps)
	require.NoError(t, page.Load(context.Background()))
	got := page.Filtered(view.RosterFilter{Search: "ALI", Semester: "3"})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"3", "5"}, page.Options().Semesters)

	err := page.Delete(context.Background(), remote.Approved(false), "s1")
	assert.True(t, errors.Is(err, appErrors.ErrNotConfirmed))
	assert.Equal(t, []string{"GET /api/admin/students"}, b.recorded())

	require.NoError(t, page.Delete(context.Background(), remote.Approved(true), "s1"))
	assert.Equal(t, []string{
		"GET /api/admin/students",
		"DELETE /api/admin/students/s1",
		"GET /api/admin/students",
	}, b.recorded())
	assert.Equal(t, "Student deleted successfully", page.State().Notice)
	assert.Equal(t, 1, page.Len())
}

func TestFailedLoadClearsRoster(t *testing.T) {
	b, deps := newBackend(t)
	var fail atomic.Bool
	b.GET("/api/admin/faculty", func(c *gin.Context) {
		if fail.Load() {
			c.String(http.StatusInternalServerError, "<html>boom</html>")
			return
		}
		c.JSON(http.StatusOK, gin.H{"faculty": []gin.H{{"_id": "f1", "name": "Dr. Rao"}}})
	})

	page := NewFacultyPage(deps)
	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, 1, page.Len())

	fail.Store(true)
	require.Error(t, page.Load(context.Background()))
	state := page.State()
	assert.Equal(t, appErrors.FallbackMessage, state.Err)
	assert.Empty(t, state.Data)
}

func TestAnnouncementsPageCreateSendsDefaults(t *testing.T) {
	b, deps := newBackend(t)
	var (
		mu     sync.Mutex
		posted map[string]interface{}
	)
	b.GET("/api/admin/announcements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"announcements": []gin.H{}})
	})
	b.POST("/api/admin/announcements", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		mu.Lock()
		_ = json.Unmarshal(raw, &posted)
		mu.Unlock()
		c.JSON(http.StatusCreated, gin.H{"announcement": gin.H{"_id": "a1"}})
	})

	page := NewAnnouncementsPage(deps)
	require.NoError(t, page.Create(context.Background(), models.AnnouncementInput{Title: "Exam week", Content: "Starts Monday"}.WithDefaults()))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "normal", posted["priority"])
	assert.Equal(t, "all", posted["target_audience"])
	assert.Equal(t, []string{"POST /api/admin/announcements", "GET /api/admin/announcements"}, b.recorded())
	assert.Equal(t, "Announcement created successfully", page.State().Notice)
}

func TestAnnouncementsPageRejectsInvalidInput(t *testing.T) {
	b, deps := newBackend(t)
	b.GET("/api/admin/announcements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"announcements": []gin.H{}})
	})

	page := NewAnnouncementsPage(deps)
	err := page.Create(context.Background(), models.AnnouncementInput{Priority: models.PriorityHigh, TargetAudience: models.AudienceAll})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.NotEmpty(t, page.State().ActionErr)
	assert.Equal(t, []string{"GET /api/admin/announcements"}, b.recorded())
}

func TestIdentityFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "u1", "role": "Faculty", "exp": time.Now().Add(time.Hour).Unix()})
	identity, ok := IdentityFromToken(token)
	require.True(t, ok)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, models.RoleFaculty, identity.Role)

	_, ok = IdentityFromToken(signedToken(t, jwt.MapClaims{"id": "u1"}))
	assert.False(t, ok)

	_, ok = IdentityFromToken("not-a-jwt")
	assert.False(t, ok)
}

func TestResolveIdentityFallsBackToProfile(t *testing.T) {
	b, deps := newBackend(t)
	b.GET("/api/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": gin.H{"_id": "u9", "name": "Dr. Rao", "role": "faculty"}})
	})

	identity, err := ResolveIdentity(context.Background(), deps.Tokens, deps.API.Auth)
	require.NoError(t, err)
	assert.Equal(t, "u9", identity.UserID)
	assert.Equal(t, []string{"GET /api/auth/me"}, b.recorded())

	_, err = ResolveIdentity(context.Background(), tokenstore.Static(""), deps.API.Auth)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestFacultyDashboardShowsOwnCourses(t *testing.T) {
	b, deps := newBackend(t)
	deps.Tokens = tokenstore.Static(signedToken(t, jwt.MapClaims{"id": "u1", "role": "faculty"}))
	deps.API = apiclient.New(apiclient.Options{BaseURL: deps.API.BaseURL(), Tokens: deps.Tokens})
	deps.RecentLimit = 3

	b.GET("/api/courses", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"courses": []gin.H{
			{"_id": "c1", "name": "Algorithms", "instructor_id": gin.H{"_id": "u1", "name": "Dr. Rao"}},
			{"_id": "c2", "name": "Databases", "instructor_id": "u2"},
			{"_id": "c3", "name": "Compilers", "instructor_id": "u1"},
		}})
	})
	b.GET("/api/announcements", func(c *gin.Context) {
		assert.Equal(t, "3", c.Query("limit"))
		c.JSON(http.StatusOK, gin.H{"announcements": []gin.H{
			{"_id": "a1", "title": "Old", "createdAt": "2024-01-01T00:00:00Z"},
			{"_id": "a2", "title": "New", "createdAt": "2024-02-01T00:00:00Z"},
			{"_id": "a3", "title": "Older", "createdAt": "2023-12-01T00:00:00Z"},
			{"_id": "a4", "title": "Oldest", "createdAt": "2023-11-01T00:00:00Z"},
		}})
	})

	page := NewFacultyDashboard(deps)
	require.NoError(t, page.Load(context.Background()))
	dash := page.Data()
	require.NotNil(t, dash)
	require.Len(t, dash.Courses, 2)
	assert.Equal(t, "c1", dash.Courses[0].ID)
	assert.Equal(t, "c3", dash.Courses[1].ID)
	require.Len(t, dash.Announcements, 3)
	assert.Equal(t, "a2", dash.Announcements[0].ID)
	assert.Equal(t, "a3", dash.Announcements[2].ID)
	assert.Equal(t, "u1", dash.Identity.UserID)
}

func TestFacultyStudentsSelectsFirstCourse(t *testing.T) {
	b, deps := newBackend(t)
	deps.Tokens = tokenstore.Static(signedToken(t, jwt.MapClaims{"_id": "u1", "role": "faculty"}))
	deps.API = apiclient.New(apiclient.Options{BaseURL: deps.API.BaseURL(), Tokens: deps.Tokens})

	b.GET("/api/courses", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"courses": []gin.H{
			{"_id": "c2", "instructor_id": "u2"},
			{"_id": "c3", "instructor_id": "u1"},
		}})
	})
	b.GET("/api/courses/:id/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"students": []gin.H{
			{"_id": "s1", "name": "Ali Khan"},
			{"_id": "s2", "name": "Bob Stone"},
		}})
	})

	page := NewFacultyStudentsPage(deps)
	require.NoError(t, page.Load(context.Background(), ""))
	assert.Equal(t, "c3", page.Roster.State().Query)
	assert.Len(t, page.Filtered("bob"), 1)
	assert.Contains(t, b.recorded(), "GET /api/courses/c3/students")
}

func TestFacultyStudentsSupersededLoadKeepsNewerRoster(t *testing.T) {
	b, deps := newBackend(t)
	deps.Tokens = tokenstore.Static(signedToken(t, jwt.MapClaims{"_id": "u1", "role": "faculty"}))
	deps.API = apiclient.New(apiclient.Options{BaseURL: deps.API.BaseURL(), Tokens: deps.Tokens})

	var courseCalls atomic.Int32
	arrivedA := make(chan struct{})
	releaseA := make(chan struct{})
	b.GET("/api/courses", func(c *gin.Context) {
		if courseCalls.Add(1) == 1 {
			close(arrivedA)
			select {
			case <-releaseA:
			case <-c.Request.Context().Done():
			}
		}
		c.JSON(http.StatusOK, gin.H{"courses": []gin.H{{"_id": "c3", "instructor_id": "u1"}}})
	})
	b.GET("/api/courses/:id/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"students": []gin.H{
			{"_id": "s1", "name": "Ali Khan"},
			{"_id": "s2", "name": "Bob Stone"},
		}})
	})

	page := NewFacultyStudentsPage(deps)
	doneA := make(chan error, 1)
	go func() { doneA <- page.Load(context.Background(), "") }()
	<-arrivedA

	require.NoError(t, page.Load(context.Background(), ""))
	close(releaseA)
	errA := <-doneA

	assert.True(t, errors.Is(errA, appErrors.ErrSuperseded))
	state := page.Roster.State()
	assert.Equal(t, "c3", state.Query)
	assert.Empty(t, state.Err)
	assert.Len(t, state.Data, 2)
	assert.NotContains(t, b.recorded(), "GET /api/courses//students")
}

func TestGradesPageSemester(t *testing.T) {
	b, deps := newBackend(t)
	b.GET("/api/students/grades", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"grades": []gin.H{{"_id": "g1", "grade": "A"}}, "gpa": 3.8, "cgpa": 3.6})
	})

	page := NewGradesPage(deps)
	assert.Empty(t, page.Grades())
	require.NoError(t, page.SelectSemester(context.Background(), "3"))
	assert.Len(t, page.Grades(), 1)
	assert.Equal(t, []string{"GET /api/students/grades?semester=3"}, b.recorded())
}

func TestNoticeBoardDefaultLimit(t *testing.T) {
	b, deps := newBackend(t)
	b.GET("/api/announcements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"announcements": []gin.H{{"_id": "a1", "title": "Holiday", "priority": "high"}}})
	})

	page := NewNoticeBoard(deps)
	require.NoError(t, page.Load(context.Background(), 0))
	assert.Equal(t, []string{"GET /api/announcements?limit=10"}, b.recorded())
	assert.Len(t, page.Filtered(view.AnnouncementFilter{Priority: "high"}), 1)
	assert.Empty(t, page.Filtered(view.AnnouncementFilter{Priority: "low"}))
}
