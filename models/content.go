package models

import "time"

// ContentType groups content items that share one collection.
type ContentType string

const (
	ContentEbook    ContentType = "ebook"
	ContentGallery  ContentType = "gallery"
	ContentDocument ContentType = "document"
)

// IsValid reports whether t is a known content type.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentEbook, ContentGallery, ContentDocument:
		return true
	}
	return false
}

// Visibility controls who may see a content item or news entry.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityMembers Visibility = "MEMBERS"
	VisibilityHidden  Visibility = "HIDDEN"
)

// IsValid reports whether v is a known visibility.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityMembers, VisibilityHidden:
		return true
	}
	return false
}

// Content is an e-book, gallery image or downloadable document.
type Content struct {
	ID           string      `bson:"id" json:"id"`
	Type         ContentType `bson:"type" json:"type"`
	Title        string      `bson:"title" json:"title"`
	Author       string      `bson:"author,omitempty" json:"author,omitempty"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	FileURL      string      `bson:"fileUrl" json:"fileUrl"`
	ThumbnailURL string      `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Visibility   Visibility  `bson:"visibility" json:"visibility"`
	CreatedBy    string      `bson:"createdBy" json:"createdBy"`
	CreatedAt    time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CreateContentRequest is the payload for publishing a content item.
type CreateContentRequest struct {
	Title        string     `json:"title" binding:"required,max=300"`
	Author       string     `json:"author" binding:"omitempty,max=200"`
	Description  string     `json:"description" binding:"omitempty,max=5000"`
	FileURL      string     `json:"fileUrl" binding:"required,url"`
	ThumbnailURL string     `json:"thumbnailUrl" binding:"omitempty,url"`
	Visibility   Visibility `json:"visibility" binding:"omitempty,visibility"`
}

// VisibilityRequest changes a content item's visibility.
type VisibilityRequest struct {
	Visibility Visibility `json:"visibility" binding:"required,visibility"`
}

// ContentFilter narrows content listings. Empty Visibilities means any.
type ContentFilter struct {
	Type         ContentType
	Visibilities []Visibility
}
