package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/college-portal/internal/models"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/middleware/requestid"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(payload),
	})
	status, body := f.status, f.body
	f.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeBackend) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the backend")
	return f.requests[len(f.requests)-1]
}

func (f *fakeBackend) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, backend *fakeBackend, tokens tokenstore.Provider) *Client {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return New(Options{BaseURL: server.URL + "/api", HTTPClient: server.Client(), Tokens: tokens})
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []string
	codes []int
}

func (f *fakeObserver) ObserveAPIRequest(method, resource string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method+" "+resource)
	f.codes = append(f.codes, status)
}

func TestDoInjectsBearerToken(t *testing.T) {
	backend := &fakeBackend{body: `{"ok":true}`}
	client := newTestClient(t, backend, tokenstore.Static("secret-token"))

	raw, err := client.Do(context.Background(), "/auth/me", RequestOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))

	req := backend.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/auth/me", req.Path)
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	backend := &fakeBackend{body: `{}`}
	client := newTestClient(t, backend, tokenstore.NewMemory(""))

	_, err := client.Do(context.Background(), "/announcements", RequestOptions{})
	require.NoError(t, err)

	req := backend.last(t)
	_, present := req.Header["Authorization"]
	assert.False(t, present)
}

func TestDoCallerHeadersOverrideDefaults(t *testing.T) {
	backend := &fakeBackend{body: `{}`}
	client := newTestClient(t, backend, tokenstore.Static("t"))

	ctx := requestid.WithContext(context.Background(), "req-7")
	_, err := client.Do(ctx, "/courses", RequestOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/merge-patch+json", "X-Extra": "1"},
		Body:    []byte(`{"name":"Algebra"}`),
	})
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/merge-patch+json", req.Header.Get("Content-Type"))
	assert.Equal(t, "1", req.Header.Get("X-Extra"))
	assert.Equal(t, "req-7", req.Header.Get(requestid.Header))
	assert.JSONEq(t, `{"name":"Algebra"}`, req.Body)
}

func TestDoBackendMessageBecomesError(t *testing.T) {
	backend := &fakeBackend{status: http.StatusNotFound, body: `{"message":"Not found"}`}
	client := newTestClient(t, backend, nil)

	_, err := client.Do(context.Background(), "/courses/missing", RequestOptions{})
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
	assert.Equal(t, http.StatusNotFound, appErrors.StatusOf(err))
	assert.True(t, errors.Is(err, appErrors.ErrAPI))
}

func TestDoFallbackMessage(t *testing.T) {
	cases := map[string]string{
		"html body":       `<html>Internal Server Error</html>`,
		"empty body":      ``,
		"json no message": `{"error":"boom"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			backend := &fakeBackend{status: http.StatusInternalServerError, body: body}
			client := newTestClient(t, backend, nil)

			_, err := client.Do(context.Background(), "/admin/dashboard", RequestOptions{})
			require.Error(t, err)
			assert.Equal(t, "API request failed", err.Error())
			assert.Equal(t, http.StatusInternalServerError, appErrors.StatusOf(err))
		})
	}
}

func TestDoMalformedSuccessBody(t *testing.T) {
	backend := &fakeBackend{body: `{"students": [`}
	client := newTestClient(t, backend, nil)

	_, err := client.Admin.Students(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrDecode))
}

func TestDoNetworkFailureIsLogged(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	client := New(Options{BaseURL: baseURL, Logger: zap.New(core)})

	_, err := client.Do(context.Background(), "/auth/me", RequestOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNetwork))
	assert.Equal(t, 1, logs.FilterMessage("api request failed").Len())
}

func TestDoTokenStoreFailure(t *testing.T) {
	backend := &fakeBackend{body: `{}`}
	failing := tokenstore.ProviderFunc(func(context.Context) (string, error) {
		return "", errors.New("disk on fire")
	})
	client := newTestClient(t, backend, failing)

	_, err := client.Do(context.Background(), "/auth/me", RequestOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrTokenStore))
	assert.Equal(t, 0, backend.count())
}

func TestDoEmptySuccessBody(t *testing.T) {
	backend := &fakeBackend{status: http.StatusNoContent}
	client := newTestClient(t, backend, nil)

	raw, err := client.Do(context.Background(), "/auth/logout", RequestOptions{Method: http.MethodPost})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDoRecordsMetrics(t *testing.T) {
	backend := &fakeBackend{body: `{"courses":[]}`}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	metrics := &fakeObserver{}
	client := New(Options{BaseURL: server.URL, HTTPClient: server.Client(), Metrics: metrics})

	_, err := client.Courses.List(context.Background(), Query{"semester": "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"GET courses"}, metrics.calls)
	assert.Equal(t, []int{http.StatusOK}, metrics.codes)
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "admin", resourceLabel("/admin/students?department=CS"))
	assert.Equal(t, "courses", resourceLabel("/courses/abc/students"))
	assert.Equal(t, "root", resourceLabel("/"))
}

func TestStudentCoursesSemesterQuery(t *testing.T) {
	backend := &fakeBackend{body: `{"courses":[{"_id":"c1","name":"Networks"}]}`}
	client := newTestClient(t, backend, nil)

	courses, err := client.Students.Courses(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	req := backend.last(t)
	assert.Equal(t, "/api/students/courses", req.Path)
	assert.Equal(t, "semester=3", req.Query)

	_, err = client.Students.Courses(context.Background(), "")
	require.NoError(t, err)
	req = backend.last(t)
	assert.Equal(t, "/api/students/courses", req.Path)
	assert.Equal(t, "", req.Query)
}

func TestDeleteAnnouncementIsNotDeduplicated(t *testing.T) {
	backend := &fakeBackend{body: `{"message":"Announcement deleted"}`}
	client := newTestClient(t, backend, tokenstore.Static("admin"))

	require.NoError(t, client.Admin.DeleteAnnouncement(context.Background(), "a-1"))
	require.NoError(t, client.Admin.DeleteAnnouncement(context.Background(), "a-1"))

	assert.Equal(t, 2, backend.count())
	req := backend.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/admin/announcements/a-1", req.Path)
}

func TestMissingEnvelopeDefaultsToEmpty(t *testing.T) {
	backend := &fakeBackend{body: `{"success":true}`}
	client := newTestClient(t, backend, nil)

	students, err := client.Admin.Students(context.Background(), Query{"department": ""})
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
	assert.Equal(t, "", backend.last(t).Query)
}

func TestSingleResourceWrappedOrBare(t *testing.T) {
	backend := &fakeBackend{body: `{"course":{"_id":"c1","code":"CS101"}}`}
	client := newTestClient(t, backend, nil)

	course, err := client.Courses.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)

	backend.mu.Lock()
	backend.body = `{"_id":"c2","code":"CS102"}`
	backend.mu.Unlock()

	course, err = client.Courses.Get(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "CS102", course.Code)
}

func TestPathParametersAreEscaped(t *testing.T) {
	backend := &fakeBackend{body: `{"students":[]}`}
	client := newTestClient(t, backend, nil)

	_, err := client.Courses.Students(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/courses/a%2Fb/students", backend.last(t).Path)
}

func TestCreateAnnouncementValidatesBeforeSending(t *testing.T) {
	backend := &fakeBackend{body: `{}`}
	client := newTestClient(t, backend, nil)

	_, err := client.Admin.CreateAnnouncement(context.Background(), models.AnnouncementInput{Content: "body"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "title is required", appErrors.Message(err))

	_, err = client.Admin.CreateAnnouncement(context.Background(), models.AnnouncementInput{Title: "t", Content: "c", Priority: "someday"})
	require.Error(t, err)
	assert.Contains(t, appErrors.Message(err), "priority must be one of")
	assert.Equal(t, 0, backend.count())
}

func TestCreateAnnouncementSendsDefaults(t *testing.T) {
	backend := &fakeBackend{status: http.StatusCreated, body: `{"announcement":{"_id":"a1","title":"Holiday","priority":"normal","target_audience":"all","author_id":{"_id":"u1","name":"Admin"}}}`}
	client := newTestClient(t, backend, tokenstore.Static("admin"))

	ann, err := client.Admin.CreateAnnouncement(context.Background(), models.AnnouncementInput{Title: "Holiday", Content: "Campus closed"})
	require.NoError(t, err)
	assert.Equal(t, "a1", ann.ID)
	assert.Equal(t, "Admin", ann.Author.Name)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t, `{"title":"Holiday","content":"Campus closed","priority":"normal","target_audience":"all"}`, req.Body)
}

func TestDeleteRequiresID(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, nil)

	err := client.Admin.DeleteStudent(context.Background(), " ")
	require.Error(t, err)
	assert.Equal(t, 0, backend.count())
}

func TestLoginDecodesToken(t *testing.T) {
	backend := &fakeBackend{body: `{"token":"jwt","user":{"_id":"u1","name":"Asha","role":"faculty"}}`}
	client := newTestClient(t, backend, nil)

	resp, err := client.Auth.Login(context.Background(), models.LoginRequest{Email: "asha@college.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, models.RoleFaculty, resp.User.Role)
	assert.Equal(t, "/api/auth/login", backend.last(t).Path)
}

func TestAnnouncementsLimit(t *testing.T) {
	backend := &fakeBackend{body: `{"announcements":[]}`}
	client := newTestClient(t, backend, nil)

	_, err := client.Announcements.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "limit=5", backend.last(t).Query)

	_, err = client.Announcements.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "", backend.last(t).Query)
}

func TestClassroomSessionsDefaultToEmpty(t *testing.T) {
	backend := &fakeBackend{body: `{"course":{"_id":"c1","name":"Networks"}}`}
	client := newTestClient(t, backend, nil)

	room, err := client.Classroom.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Networks", room.Course.Name)
	assert.NotNil(t, room.Sessions)
	assert.Empty(t, room.Sessions)
	assert.Equal(t, "/api/classroom/c1", backend.last(t).Path)
}

func TestCreateSessionRejectsEndBeforeStart(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, nil)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := client.Classroom.CreateSession(context.Background(), "c1", models.SessionInput{
		Title:     "Lab",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, backend.count())
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	backend := &fakeBackend{body: `{"session":{"_id":"s1","title":"Lab"}}`}
	client := newTestClient(t, backend, nil)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	in := models.SessionInput{Title: "Lab", StartTime: start, EndTime: start.Add(time.Hour)}

	session, err := client.Classroom.CreateSession(context.Background(), "c1", in)
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, "/api/classroom/c1/sessions", backend.last(t).Path)

	_, err = client.Classroom.UpdateSession(context.Background(), "s1", in)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, backend.last(t).Method)
	assert.Equal(t, "/api/classroom/sessions/s1", backend.last(t).Path)

	require.NoError(t, client.Classroom.DeleteSession(context.Background(), "s1"))
	assert.Equal(t, http.MethodDelete, backend.last(t).Method)
}

func TestGradesEndpoints(t *testing.T) {
	backend := &fakeBackend{body: `{"grades":[{"_id":"g1","score":88,"grade":"A"}]}`}
	client := newTestClient(t, backend, nil)

	grades, err := client.Grades.ForCourse(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "A", grades[0].Grade)
	assert.Equal(t, "/api/grades/courses/c1", backend.last(t).Path)

	_, err = client.Grades.ForAssignment(context.Background(), "as1")
	require.NoError(t, err)
	assert.Equal(t, "/api/grades/assignments/as1", backend.last(t).Path)

	_, err = client.Grades.Update(context.Background(), "g1", models.GradeInput{StudentID: "s1", Score: 91})
	require.NoError(t, err)
	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/grades/g1", req.Path)
	assert.JSONEq(t, `{"student_id":"s1","score":91}`, req.Body)
}

func TestCreateGradeRequiresStudent(t *testing.T) {
	backend := &fakeBackend{}
	client := newTestClient(t, backend, nil)

	_, err := client.Grades.Create(context.Background(), models.GradeInput{Score: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, backend.count())
}
