package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessions(client, time.Hour)
}

func newAuthRouter(t *testing.T, password string) (*gin.Engine, *Sessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := newTestSessions(t)
	h := NewHandler(sessions, string(hash))

	r := gin.New()
	h.Register(r.Group("/admin"))

	protected := r.Group("/admin")
	protected.Use(Required(sessions))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, sessions
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t, "correct-horse")

	rec := postLogin(r, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_EmptyBody(t *testing.T) {
	r, _ := newAuthRouter(t, "correct-horse")

	rec := postLogin(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestSessions(t), "")
	r := gin.New()
	h.Register(r.Group("/admin"))

	rec := postLogin(r, `{"password":"anything"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	r, sessions := newAuthRouter(t, "correct-horse")

	rec := postLogin(r, `{"password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.NoError(t, sessions.Validate(context.Background(), cookie.Value))
}

func TestRequired_BlocksWithoutCookie(t *testing.T) {
	r, _ := newAuthRouter(t, "correct-horse")

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequired_PassesWithValidSession(t *testing.T) {
	r, _ := newAuthRouter(t, "correct-horse")

	login := postLogin(r, `{"password":"correct-horse"}`)
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_DestroysSession(t *testing.T) {
	r, sessions := newAuthRouter(t, "correct-horse")

	login := postLogin(r, `{"password":"correct-horse"}`)
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.ErrorIs(t, sessions.Validate(context.Background(), cookie.Value), ErrNoSession)
}

func TestSessions_UnknownToken(t *testing.T) {
	sessions := newTestSessions(t)
	assert.ErrorIs(t, sessions.Validate(context.Background(), "bogus"), ErrNoSession)
	assert.ErrorIs(t, sessions.Validate(context.Background(), ""), ErrNoSession)
}
