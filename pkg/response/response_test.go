package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestErrorPassesBackendStatus(t *testing.T) {
	c, rec := newContext()
	apiErr := appErrors.Clone(appErrors.ErrAPI, "Not found")
	apiErr.Status = http.StatusNotFound

	Error(c, apiErr)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var env struct {
		Error appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Not found", env.Error.Message)
	assert.Equal(t, "API_ERROR", env.Error.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Len(t, c.Errors, 1)
}

func TestErrorWrapsPlainErrors(t *testing.T) {
	c, rec := newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestJSONWithMeta(t *testing.T) {
	c, rec := newContext()
	JSON(c, http.StatusOK, []string{"a"}, map[string]interface{}{"total": 1})

	assert.JSONEq(t, `{"data":["a"],"meta":{"total":1}}`, rec.Body.String())
}
