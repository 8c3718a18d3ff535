package routes

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"libraryhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryReturnsPublicItemsNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t, models.ContentGallery, "first", models.VisibilityPublic)
	e.seedContent(t, models.ContentGallery, "hidden", models.VisibilityHidden)
	e.seedContent(t, models.ContentGallery, "members", models.VisibilityMembers)
	e.seedContent(t, models.ContentEbook, "not-gallery", models.VisibilityPublic)
	e.seedContent(t, models.ContentGallery, "second", models.VisibilityPublic)

	w := e.do(http.MethodGet, "/api/gallery", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].(map[string]interface{})["title"])
	assert.Equal(t, "first", items[1].(map[string]interface{})["title"])
}

func TestGalleryStoreFailureDegradesToEmptyList(t *testing.T) {
	e := newTestEnv(t)
	e.contents.Err = errors.New("connection refused")

	w := e.do(http.MethodGet, "/api/gallery", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestMemberEbooks(t *testing.T) {
	e := newTestEnv(t)
	_, memberToken := e.seedUser(t, models.RoleMember, "Mem", "Ber", false)
	_, adminToken := e.seedUser(t, models.RoleAdmin, "Ada", "Admin", false)
	visible := e.seedContent(t, models.ContentEbook, "visible", models.VisibilityMembers)
	hidden := e.seedContent(t, models.ContentEbook, "hidden", models.VisibilityHidden)

	w := e.do(http.MethodGet, "/api/member/ebooks/"+visible.ID, memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, visible.ID, body["ebook"].(map[string]interface{})["id"])

	w = e.do(http.MethodGet, "/api/member/ebooks/"+hidden.ID, memberToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Ebook not found"}`, w.Body.String())

	w = e.do(http.MethodGet, "/api/member/ebooks/"+hidden.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/member/ebooks/missing", memberToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodGet, "/api/member/ebooks", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["ebooks"], 1)
}

func TestContentVisibility(t *testing.T) {
	e := newTestEnv(t)
	_, adminToken := e.seedUser(t, models.RoleAdmin, "Ada", "Admin", false)
	item := e.seedContent(t, models.ContentEbook, "book", models.VisibilityMembers)

	w := e.do(http.MethodPatch, "/api/content/ebook/"+item.ID+"/visibility", adminToken, map[string]string{"visibility": "HIDDEN"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])

	stored, err := e.contents.GetByID(context.Background(), models.ContentEbook, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityHidden, stored.Visibility)

	t.Run("wrong type is not found", func(t *testing.T) {
		w := e.do(http.MethodPatch, "/api/content/gallery/"+item.ID+"/visibility", adminToken, map[string]string{"visibility": "PUBLIC"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("missing id is not found", func(t *testing.T) {
		w := e.do(http.MethodPatch, "/api/content/ebook/missing/visibility", adminToken, map[string]string{"visibility": "PUBLIC"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("unknown visibility is rejected", func(t *testing.T) {
		w := e.do(http.MethodPatch, "/api/content/ebook/"+item.ID+"/visibility", adminToken, map[string]string{"visibility": "SECRET"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("unknown type is rejected", func(t *testing.T) {
		w := e.do(http.MethodPatch, "/api/content/video/"+item.ID+"/visibility", adminToken, map[string]string{"visibility": "PUBLIC"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateAndDeleteContent(t *testing.T) {
	e := newTestEnv(t)
	_, librarianToken := e.seedUser(t, models.RoleLibrarian, "Lib", "Rarian", false)
	_, adminToken := e.seedUser(t, models.RoleAdmin, "Ada", "Admin", false)

	w := e.do(http.MethodPost, "/api/content/gallery", librarianToken, map[string]string{
		"title":   "Reading room",
		"fileUrl": "https://cdn.example.org/room.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["content"].(map[string]interface{})
	assert.Equal(t, "MEMBERS", created["visibility"])
	id := created["id"].(string)

	w = e.do(http.MethodDelete, "/api/content/gallery/"+id, librarianToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodDelete, "/api/content/gallery/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = e.do(http.MethodDelete, "/api/content/gallery/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
