// Package portal assembles the portal screens. Each page owns its remote data,
// derives filtered views from it and routes create/update/delete through the client.
package portal

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

// Deps are shared by every page.
type Deps struct {
	API           *apiclient.Client
	Tokens        tokenstore.Provider
	Logger        *zap.Logger
	Stale         remote.StaleObserver
	FlashDuration time.Duration
	Now           func() time.Time
	// NoticeLimit caps the notice board; RecentLimit the dashboard announcements.
	NoticeLimit int
	RecentLimit int
}

func (d Deps) options(name string) remote.Options {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return remote.Options{
		Name:          name,
		Logger:        logger.Named(name),
		Stale:         d.Stale,
		FlashDuration: d.FlashDuration,
		Now:           d.Now,
	}
}

func (d Deps) noticeLimit() int {
	if d.NoticeLimit <= 0 {
		return 10
	}
	return d.NoticeLimit
}

func (d Deps) recentLimit() int {
	if d.RecentLimit <= 0 {
		return 5
	}
	return d.RecentLimit
}

// none is the dependency set of pages that fetch once on mount.
type none = struct{}

// Delete confirmation prompts.
const (
	ConfirmDeleteStudent      = "Are you sure you want to delete this student?"
	ConfirmDeleteFaculty      = "Are you sure you want to delete this faculty member?"
	ConfirmDeleteAnnouncement = "Are you sure you want to delete this announcement?"
	ConfirmDeleteCourse       = "Are you sure you want to delete this course?"
)
