package models

import "time"

// Role is a principal's authorization level.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
	RoleGuest     Role = "GUEST"
)

var ValidRoles = []Role{RoleAdmin, RoleLibrarian, RoleMember, RoleGuest}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// IsStaff reports whether r may manage the catalog.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleLibrarian
}

// Profile is the public-facing part of a user.
type Profile struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// HasName reports whether at least one name part is present.
func (p Profile) HasName() bool {
	return p.FirstName != "" || p.LastName != ""
}

// User is a registered principal.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Profile      Profile   `bson:"profile" json:"profile"`
	IsPublic     bool      `bson:"isPublic" json:"isPublic"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Principal is the authenticated actor making a request.
type Principal struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}

// HasRole reports whether the principal's role is in the allow-list.
func (p *Principal) HasRole(allowed ...Role) bool {
	if p == nil {
		return false
	}
	for _, r := range allowed {
		if p.Role == r {
			return true
		}
	}
	return false
}

// PublicMember is the directory view of a user.
type PublicMember struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      Role      `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// ToPublicMember projects a user onto its directory entry.
func (u User) ToPublicMember() PublicMember {
	return PublicMember{
		ID:        u.ID,
		FirstName: u.Profile.FirstName,
		LastName:  u.Profile.LastName,
		Bio:       u.Profile.Bio,
		AvatarURL: u.Profile.AvatarURL,
		Role:      u.Role,
		JoinedAt:  u.CreatedAt,
	}
}

// MemberFilter selects entries of the public directory.
type MemberFilter struct {
	Query  string
	Limit  int64
	Offset int64
}
