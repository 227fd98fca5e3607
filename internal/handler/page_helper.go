package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/remote"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/response"
)

func stateMeta[Q, T any](s remote.State[Q, T]) map[string]interface{} {
	meta := map[string]interface{}{"generation": s.Generation}
	if !s.FetchedAt.IsZero() {
		meta["fetched_at"] = s.FetchedAt
	}
	if s.Notice != "" {
		meta["notice"] = s.Notice
	}
	if s.Err != "" {
		meta["error"] = s.Err
	}
	return meta
}

// confirmation reads the confirm=true flag that stands in for the delete dialog.
func confirmation(c *gin.Context) remote.Confirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return remote.Approved(ok)
}

func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindQuery(out); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return false
	}
	return true
}
