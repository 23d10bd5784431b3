package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/middleware"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/session"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	err error
}

func (f fakeAuth) Login(_ context.Context, email, _, _ string) (session.LoginResult, error) {
	if f.err != nil {
		return session.LoginResult{}, f.err
	}
	return session.LoginResult{
		Session:   session.Authenticated(&session.Member{ID: "u1", Email: email}),
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (fakeAuth) Logout() session.Session { return session.Anonymous() }

func (fakeAuth) TTL() time.Duration { return time.Hour }

func newRouter(a Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(a, false)
	r.POST("/signin", h.SignIn)
	r.POST("/signout", h.SignOut)
	r.GET("/me", h.Me)
	return r
}

func post(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	_ = json.NewEncoder(&payload).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignInSetsTokenCookie(t *testing.T) {
	w := post(newRouter(fakeAuth{}), "/signin", map[string]string{"email": "ada@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var token *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			token = c
		}
	}
	require.NotNil(t, token)
	assert.Equal(t, "signed-token", token.Value)
	assert.True(t, token.HttpOnly)
}

func TestSignInErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"bad credentials", session.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", session.ErrInactive, http.StatusForbidden},
		{"totp required", session.ErrTOTPRequired, http.StatusUnauthorized},
		{"bad totp", session.ErrInvalidTOTP, http.StatusUnauthorized},
		{"store down", store.NewError("find", "users", "", store.ErrStoreUnavailable, nil), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(newRouter(fakeAuth{err: tc.err}), "/signin", map[string]string{"email": "a@b.c", "password": "x"})
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestSignInRequiresFields(t *testing.T) {
	w := post(newRouter(fakeAuth{}), "/signin", map[string]string{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email and password are required")
}

func TestMeForVisitor(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(fakeAuth{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAuthenticated":false`)
}
