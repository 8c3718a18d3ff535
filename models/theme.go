package models

import "time"

// GlobalThemeKey identifies the single site-wide theme record.
const GlobalThemeKey = "global"

// Theme holds site-wide presentation settings.
type Theme struct {
	Key          string    `bson:"key" json:"-"`
	PrimaryColor string    `bson:"primaryColor" json:"primaryColor"`
	AccentColor  string    `bson:"accentColor" json:"accentColor"`
	Mode         string    `bson:"mode" json:"mode"`
	LogoURL      string    `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	UpdatedBy    string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultTheme is served until an admin saves one.
func DefaultTheme() Theme {
	return Theme{
		Key:          GlobalThemeKey,
		PrimaryColor: "#1f4e79",
		AccentColor:  "#f2a900",
		Mode:         "light",
	}
}

// ThemeRequest is the payload for saving the theme.
type ThemeRequest struct {
	PrimaryColor string `json:"primaryColor" binding:"required,hexcolor"`
	AccentColor  string `json:"accentColor" binding:"required,hexcolor"`
	Mode         string `json:"mode" binding:"required,oneof=light dark"`
	LogoURL      string `json:"logoUrl" binding:"omitempty,url"`
}
