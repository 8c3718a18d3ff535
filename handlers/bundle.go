package handlers

import (
	"libraryhub/services/auth"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AuthService resolves bearer tokens for the authentication middleware.
	AuthService auth.AuthService

	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	AdminHandler        *AdminHandler
	BookHandler         *BookHandler
	ReservationHandler  *ReservationHandler
	ContentHandler      *ContentHandler
	NewsHandler         *NewsHandler
	NotificationHandler *NotificationHandler
	ThemeHandler        *ThemeHandler
	ApplicationHandler  *ApplicationHandler
	HealthHandler       *HealthHandler
}
