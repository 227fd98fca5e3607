package models

import (
	"strings"
	"time"
)

// AnnouncementPriority drives ordering and emphasis.
type AnnouncementPriority string

const (
	PriorityUrgent AnnouncementPriority = "urgent"
	PriorityHigh   AnnouncementPriority = "high"
	PriorityNormal AnnouncementPriority = "normal"
	PriorityLow    AnnouncementPriority = "low"
)

// Rank orders priorities from most (0) to least pressing. Unknown values sort last.
func (p AnnouncementPriority) Rank() int {
	switch AnnouncementPriority(strings.ToLower(string(p))) {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// AnnouncementAudience restricts who an announcement targets.
type AnnouncementAudience string

const (
	AudienceAll      AnnouncementAudience = "all"
	AudienceStudents AnnouncementAudience = "students"
	AudienceFaculty  AnnouncementAudience = "faculty"
)

// Announcement is a notice published by an administrator.
type Announcement struct {
	ID             string               `json:"_id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	Priority       AnnouncementPriority `json:"priority"`
	TargetAudience AnnouncementAudience `json:"target_audience"`
	Author         Ref                  `json:"author_id"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// AnnouncementInput is the create/update payload.
type AnnouncementInput struct {
	Title          string               `json:"title" validate:"required"`
	Content        string               `json:"content" validate:"required"`
	Priority       AnnouncementPriority `json:"priority" validate:"required,oneof=urgent high normal low"`
	TargetAudience AnnouncementAudience `json:"target_audience" validate:"required,oneof=all students faculty"`
}

// WithDefaults fills the form defaults: normal priority for everyone.
func (in AnnouncementInput) WithDefaults() AnnouncementInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Priority = AnnouncementPriority(strings.ToLower(string(in.Priority)))
	in.TargetAudience = AnnouncementAudience(strings.ToLower(string(in.TargetAudience)))
	if in.Priority == "" {
		in.Priority = PriorityNormal
	}
	if in.TargetAudience == "" {
		in.TargetAudience = AudienceAll
	}
	return in
}

// InputFrom copies an existing announcement into an editable form.
func InputFrom(a Announcement) AnnouncementInput {
	return AnnouncementInput{
		Title:          a.Title,
		Content:        a.Content,
		Priority:       a.Priority,
		TargetAudience: a.TargetAudience,
	}
}
