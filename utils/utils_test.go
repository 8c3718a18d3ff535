package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("utils-secret")
	token, issued, err := GenerateToken(secret, "user-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, issued.Id, claims.Id)
	assert.InDelta(t, time.Hour.Seconds(), claims.ExpiresIn().Seconds(), 5)

	_, err = ParseToken([]byte("other"), token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	secret := []byte("utils-secret")

	expired, _, err := GenerateToken(secret, "user-1", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, expired)
	assert.Error(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &TokenClaims{StandardClaims: jwt.StandardClaims{
		Id:        "jti",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}})
	signed, err := noSubject.SignedString(secret)
	require.NoError(t, err)
	_, err = ParseToken(secret, signed)
	assert.Error(t, err)

	_, err = ParseToken(secret, "not.a.token")
	assert.Error(t, err)
}

func TestExpiresInNeverNegative(t *testing.T) {
	c := &TokenClaims{StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()}}
	assert.Zero(t, c.ExpiresIn())
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{NewValidationError("title is required"), http.StatusBadRequest, `{"error":"title is required"}`},
		{fmt.Errorf("book x: %w", ErrNotFound), http.StatusNotFound, `{"error":"Book not found"}`},
		{ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Invalid email or password"}`},
		{ErrUnauthorized, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{ErrForbidden, http.StatusForbidden, `{"error":"Forbidden"}`},
		{fmt.Errorf("wrapped: %w", NewConflictError("Already reserved")), http.StatusConflict, `{"error":"Already reserved"}`},
		{ErrConflict, http.StatusConflict, `{"error":"Resource already exists"}`},
		{fmt.Errorf("find: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, `{"error":"Request timed out"}`},
		{errors.New("socket closed"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/books/x", nil)

		RespondError(c, tc.err, "Book not found")

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.JSONEq(t, tc.body, w.Body.String(), tc.err.Error())
		assert.True(t, c.IsAborted())
	}
}

func TestRespondErrorDefaultNotFoundMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondError(c, ErrNotFound, "")
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

type bindTarget struct {
	Email      string `binding:"required,email"`
	Visibility string `binding:"omitempty,visibility"`
	Role       string `binding:"omitempty,role"`
	Kind       string `binding:"omitempty,contenttype"`
	Mode       string `binding:"omitempty,oneof=light dark"`
}

func TestBindingMessage(t *testing.T) {
	RegisterValidators()

	cases := map[string]bindTarget{
		"Email is required":                                   {},
		"Email must be a valid email address":                 {Email: "nope"},
		"Visibility must be one of PUBLIC, MEMBERS, HIDDEN":   {Email: "a@b.org", Visibility: "SECRET"},
		"Role must be one of ADMIN, LIBRARIAN, MEMBER, GUEST": {Email: "a@b.org", Role: "ROOT"},
		"Kind must be one of ebook, gallery, document":        {Email: "a@b.org", Kind: "video"},
		"Mode must be one of light dark":                      {Email: "a@b.org", Mode: "sepia"},
	}
	for want, target := range cases {
		err := binding.Validator.ValidateStruct(target)
		require.Error(t, err, want)
		assert.Equal(t, want, BindingMessage(err))
	}

	assert.NoError(t, binding.Validator.ValidateStruct(bindTarget{Email: "a@b.org", Visibility: "PUBLIC", Role: "MEMBER", Kind: "ebook"}))
	assert.Equal(t, "Invalid request body", BindingMessage(errors.New("unexpected EOF")))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Dune", SanitizeText("  <b>Dune</b> "))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
	assert.Equal(t, "<p>Hi <strong>there</strong></p>", SanitizeRichText(`<p onclick="x()">Hi <strong>there</strong></p><script>x()</script>`))
}

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }
	hang := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	status := CheckHealth(context.Background(), ok, ok)
	assert.True(t, status.Healthy())
	assert.Equal(t, "ok", status.Status)

	status = CheckHealth(context.Background(), ok, down)
	assert.False(t, status.Healthy())
	assert.Equal(t, "degraded", status.Status)
	assert.True(t, status.Mongo)
	assert.False(t, status.Redis)

	status = CheckHealth(context.Background(), nil, ok)
	assert.False(t, status.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	status = CheckHealth(ctx, hang, ok)
	assert.False(t, status.Mongo)
	assert.Less(t, time.Since(start), healthCheckTimeout)
}
