package models

import "time"

// NewsType distinguishes announcements from dated events.
type NewsType string

const (
	NewsTypeNews  NewsType = "NEWS"
	NewsTypeEvent NewsType = "EVENT"
)

// NewsEvent is a library announcement or event.
type NewsEvent struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Body        string     `bson:"body" json:"body"`
	Type        NewsType   `bson:"type" json:"type"`
	IsPublished bool       `bson:"isPublished" json:"isPublished"`
	Visibility  Visibility `bson:"visibility" json:"visibility"`
	EventDate   *time.Time `bson:"eventDate,omitempty" json:"eventDate"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	CreatedBy   string     `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NewsSummary is the admin listing row.
type NewsSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        NewsType   `json:"type"`
	IsPublished bool       `json:"isPublished"`
	Visibility  Visibility `json:"visibility"`
	EventDate   *time.Time `json:"eventDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Summary projects a news entry onto its admin listing row.
func (n NewsEvent) Summary() NewsSummary {
	return NewsSummary{
		ID:          n.ID,
		Title:       n.Title,
		Type:        n.Type,
		IsPublished: n.IsPublished,
		Visibility:  n.Visibility,
		EventDate:   n.EventDate,
		CreatedAt:   n.CreatedAt,
	}
}

// CreateNewsRequest is the payload for a new news entry.
type CreateNewsRequest struct {
	Title       string     `json:"title" binding:"required,max=300"`
	Body        string     `json:"body" binding:"required,max=20000"`
	Type        NewsType   `json:"type" binding:"required,oneof=NEWS EVENT"`
	IsPublished bool       `json:"isPublished"`
	Visibility  Visibility `json:"visibility" binding:"omitempty,visibility"`
	EventDate   *time.Time `json:"eventDate"`
	Location    string     `json:"location" binding:"omitempty,max=300"`
}

// UpdateNewsRequest carries a partial news update. Nil fields are left untouched.
type UpdateNewsRequest struct {
	Title       *string     `json:"title" binding:"omitempty,min=1,max=300"`
	Body        *string     `json:"body" binding:"omitempty,min=1,max=20000"`
	IsPublished *bool       `json:"isPublished"`
	Visibility  *Visibility `json:"visibility" binding:"omitempty,visibility"`
	EventDate   *time.Time  `json:"eventDate"`
	Location    *string     `json:"location" binding:"omitempty,max=300"`
}

// NewsFilter narrows news listings.
type NewsFilter struct {
	PublishedOnly bool
	Visibilities  []Visibility
}
