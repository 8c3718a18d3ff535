package routes

import (
	"context"
	"net/http"
	"testing"

	"libraryhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedEndpointsRejectAnonymousCallers(t *testing.T) {
	e := newTestEnv(t)
	book := e.seedBook(t, "The Dispossessed", 2)
	target, _ := e.seedUser(t, models.RoleMember, "Shevek", "Urras", true)

	cases := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPost, "/api/admin/users/" + target.ID + "/promote", nil},
		{http.MethodPost, "/api/admin/users/" + target.ID + "/revoke", nil},
		{http.MethodGet, "/api/admin/users", nil},
		{http.MethodPatch, "/api/books/" + book.ID, map[string]string{"title": "Changed"}},
		{http.MethodDelete, "/api/books/" + book.ID, nil},
		{http.MethodPost, "/api/books", map[string]interface{}{"title": "X", "author": "Y", "totalCopies": 1}},
		{http.MethodPost, "/api/reservations", map[string]string{"bookId": book.ID}},
		{http.MethodPatch, "/api/notifications/read-all", nil},
		{http.MethodGet, "/api/member/ebooks/some-id", nil},
		{http.MethodPatch, "/api/content/ebook/some-id/visibility", map[string]string{"visibility": "PUBLIC"}},
		{http.MethodGet, "/api/admin/news", nil},
		{http.MethodPost, "/api/admin/theme", map[string]string{"primaryColor": "#000000", "accentColor": "#ffffff", "mode": "dark"}},
		{http.MethodPost, "/api/applications", map[string]string{"motivation": "I love reading books"}},
		{http.MethodGet, "/api/auth/me", nil},
		{http.MethodPost, "/api/auth/logout", nil},
		{http.MethodPatch, "/api/profile", map[string]string{"bio": "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := e.do(tc.method, tc.path, "", tc.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}

	stored, err := e.books.GetByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Dispossessed", stored.Title)
	assert.Equal(t, 1, e.books.Len())

	reservations, err := e.reservations.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, reservations)

	u, err := e.users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, u.Role)
	assert.Zero(t, e.themes.Len())
}

func TestUnauthenticatedPromoteReturnsExactBody(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/api/admin/users/x/promote", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestInvalidTokenIsTreatedAsAnonymous(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Public endpoints still answer.
	w = e.do(http.MethodGet, "/api/books", "not-a-jwt", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleOutsideAllowListIsForbidden(t *testing.T) {
	e := newTestEnv(t)
	book := e.seedBook(t, "Earthsea", 1)
	_, memberToken := e.seedUser(t, models.RoleMember, "Ged", "Sparrowhawk", true)
	_, librarianToken := e.seedUser(t, models.RoleLibrarian, "Ogion", "Silent", true)
	_, guestToken := e.seedUser(t, models.RoleGuest, "Tenar", "Arha", false)
	target, _ := e.seedUser(t, models.RoleMember, "Vetch", "Estarriol", true)
	ebook := e.seedContent(t, models.ContentEbook, "tombs", models.VisibilityMembers)

	cases := []struct {
		name, token, method, path string
		body                      interface{}
	}{
		{"member promotes", memberToken, http.MethodPost, "/api/admin/users/" + target.ID + "/promote", nil},
		{"librarian promotes", librarianToken, http.MethodPost, "/api/admin/users/" + target.ID + "/promote", nil},
		{"member revokes", memberToken, http.MethodPost, "/api/admin/users/" + target.ID + "/revoke", nil},
		{"member edits book", memberToken, http.MethodPatch, "/api/books/" + book.ID, map[string]string{"title": "Hacked"}},
		{"guest deletes book", guestToken, http.MethodDelete, "/api/books/" + book.ID, nil},
		{"librarian changes visibility", librarianToken, http.MethodPatch, "/api/content/ebook/" + ebook.ID + "/visibility", map[string]string{"visibility": "PUBLIC"}},
		{"guest reads ebook", guestToken, http.MethodGet, "/api/member/ebooks/" + ebook.ID, nil},
		{"librarian lists admin news", librarianToken, http.MethodGet, "/api/admin/news", nil},
		{"member saves theme", memberToken, http.MethodPost, "/api/admin/theme", map[string]string{"primaryColor": "#000000", "accentColor": "#ffffff", "mode": "dark"}},
		{"member reviews applications", memberToken, http.MethodGet, "/api/admin/applications", nil},
		{"member sends notification", memberToken, http.MethodPost, "/api/admin/notifications", map[string]string{"userId": target.ID, "title": "t", "message": "m"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(tc.method, tc.path, tc.token, tc.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
		})
	}

	stored, err := e.books.GetByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Earthsea", stored.Title)

	u, err := e.users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, u.Role)

	c, err := e.contents.GetByID(context.Background(), models.ContentEbook, ebook.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityMembers, c.Visibility)
	assert.Zero(t, e.themes.Len())
}

func TestRoleIsReadFromStoreOnEveryRequest(t *testing.T) {
	e := newTestEnv(t)
	admin, adminToken := e.seedUser(t, models.RoleAdmin, "Ada", "Admin", false)
	_, otherToken := e.seedUser(t, models.RoleAdmin, "Bea", "Admin", false)

	w := e.do(http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodPost, "/api/admin/users/"+admin.ID+"/revoke", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The old token is still valid, but the role behind it changed.
	w = e.do(http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthAndMetricsAreMounted(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["mongo"])
	assert.Equal(t, true, body["redis"])

	w = e.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
