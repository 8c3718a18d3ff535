package models

import "time"

// Notification is a message addressed to one user.
type Notification struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Type      string     `bson:"type" json:"type"`
	Title     string     `bson:"title" json:"title"`
	Message   string     `bson:"message" json:"message"`
	Link      string     `bson:"link,omitempty" json:"link,omitempty"`
	Read      bool       `bson:"read" json:"read"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	ReadAt    *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
}

// CreateNotificationRequest is the staff payload for notifying a user.
type CreateNotificationRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Type    string `json:"type" binding:"omitempty,max=40"`
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
	Link    string `json:"link" binding:"omitempty,url"`
}
