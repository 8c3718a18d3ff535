package models

import "time"

// Book is a catalog entry.
type Book struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Author          string    `bson:"author" json:"author"`
	ISBN            string    `bson:"isbn,omitempty" json:"isbn,omitempty"`
	Genre           string    `bson:"genre,omitempty" json:"genre,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	CoverURL        string    `bson:"coverUrl,omitempty" json:"coverUrl,omitempty"`
	PublishedYear   int       `bson:"publishedYear,omitempty" json:"publishedYear,omitempty"`
	TotalCopies     int       `bson:"totalCopies" json:"totalCopies"`
	AvailableCopies int       `bson:"availableCopies" json:"availableCopies"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookRequest is the payload for adding a book.
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,max=300"`
	Author        string `json:"author" binding:"required,max=200"`
	ISBN          string `json:"isbn" binding:"omitempty,isbn"`
	Genre         string `json:"genre" binding:"omitempty,max=80"`
	Description   string `json:"description" binding:"omitempty,max=5000"`
	CoverURL      string `json:"coverUrl" binding:"omitempty,url"`
	PublishedYear int    `json:"publishedYear" binding:"omitempty,min=0,max=3000"`
	TotalCopies   int    `json:"totalCopies" binding:"min=0"`
}

// UpdateBookRequest carries a partial book update. Nil fields are left untouched.
type UpdateBookRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=300"`
	Author          *string `json:"author" binding:"omitempty,min=1,max=200"`
	ISBN            *string `json:"isbn" binding:"omitempty,isbn"`
	Genre           *string `json:"genre" binding:"omitempty,max=80"`
	Description     *string `json:"description" binding:"omitempty,max=5000"`
	CoverURL        *string `json:"coverUrl" binding:"omitempty,url"`
	PublishedYear   *int    `json:"publishedYear" binding:"omitempty,min=0,max=3000"`
	TotalCopies     *int    `json:"totalCopies" binding:"omitempty,min=0"`
	AvailableCopies *int    `json:"availableCopies" binding:"omitempty,min=0"`
}

// BookFilter narrows catalog listings.
type BookFilter struct {
	Query  string
	Genre  string
	Limit  int64
	Offset int64
}
