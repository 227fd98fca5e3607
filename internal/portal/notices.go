package portal

import (
	"context"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/remote"
	"github.com/noah-isme/college-portal/internal/view"
)

// NoticeBoard shows the most recent announcements to any signed-in user.
type NoticeBoard struct {
	*remote.Collection[int, models.Announcement]
	d Deps
}

// NewNoticeBoard builds the page.
func NewNoticeBoard(d Deps) *NoticeBoard {
	fetch := func(ctx context.Context, limit int) ([]models.Announcement, error) {
		items, err := d.API.Announcements.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		view.SortAnnouncements(items)
		return items, nil
	}
	return &NoticeBoard{Collection: remote.NewCollection(fetch, d.options("notice_board")), d: d}
}

// Load fetches up to limit announcements; limit <= 0 uses the configured default.
func (p *NoticeBoard) Load(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = p.d.noticeLimit()
	}
	_, err := p.Collection.Load(ctx, limit)
	return err
}

// Filtered applies the board's filters.
func (p *NoticeBoard) Filtered(f view.AnnouncementFilter) []models.Announcement {
	return p.View(f.Predicate())
}
