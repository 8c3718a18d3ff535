package models

import "time"

// ApplicationStatus is the review state of a membership application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// IsValid reports whether s is a known application status.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// MemberApplication is a request to become a library member.
type MemberApplication struct {
	ID         string            `bson:"id" json:"id"`
	UserID     string            `bson:"userId" json:"userId"`
	FirstName  string            `bson:"firstName" json:"firstName"`
	LastName   string            `bson:"lastName" json:"lastName"`
	Email      string            `bson:"email" json:"email"`
	Phone      string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Motivation string            `bson:"motivation" json:"motivation"`
	Status     ApplicationStatus `bson:"status" json:"status"`
	ReviewedBy string            `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewNote string            `bson:"reviewNote,omitempty" json:"reviewNote,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	ReviewedAt *time.Time        `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

// ApplicationRequest is the applicant's payload.
type ApplicationRequest struct {
	Phone      string `json:"phone" binding:"omitempty,e164"`
	Motivation string `json:"motivation" binding:"required,min=10,max=2000"`
}

// ReviewRequest carries an optional reviewer note.
type ReviewRequest struct {
	Note string `json:"note" binding:"omitempty,max=1000"`
}
