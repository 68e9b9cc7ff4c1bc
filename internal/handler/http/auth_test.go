// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/service"
	"github.com/MKhiriev/lexsight/internal/store"
	"github.com/MKhiriev/lexsight/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{ID: "user-1", Email: "jane@example.com", Name: "Jane", Password: "$2a$digest"}

func findSessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantError  string
	}{
		{name: "created", body: `{"email":"jane@example.com","password":"secret","name":"Jane"}`, wantStatus: http.StatusCreated},
		{name: "broken json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantError: "invalid JSON was passed"},
		{name: "duplicate email", body: `{"email":"jane@example.com","password":"secret"}`, createErr: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantError: "User with this email already exists"},
		{name: "invalid data", body: `{"email":"","password":""}`, createErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantError: "invalid data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				createUserFn: func(_ context.Context, email, password, name string) (models.User, error) {
					if tt.createErr != nil {
						return models.User{}, tt.createErr
					}
					return testUser, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
				assert.Empty(t, rec.Result().Cookies())
				return
			}

			cookie := findSessionCookie(t, rec)
			assert.Equal(t, "raw-token", cookie.Value)

			var resp models.UserResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.User)
			assert.Equal(t, testUser.Projection(), *resp.User)
			assert.NotContains(t, rec.Body.String(), "digest")
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		sessionErr error
		wantStatus int
		wantError  string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong password", authErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantError: "Invalid email or password"},
		{name: "store failure", authErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantError: "Internal Server Error"},
		{name: "session failure", sessionErr: service.ErrSessionCreation, wantStatus: http.StatusInternalServerError, wantError: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				authenticateFn: func(_ context.Context, email, password string) (models.User, error) {
					assert.Equal(t, "jane@example.com", email)
					assert.Equal(t, "secret", password)
					return testUser, tt.authErr
				},
			}
			if tt.sessionErr != nil {
				auth.createSessionFn = func(context.Context, string) (models.Session, string, error) {
					return models.Session{}, "", tt.sessionErr
				}
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			body := strings.NewReader(`{"email":"jane@example.com","password":"secret"}`)
			rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/login", body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
				return
			}
			cookie := findSessionCookie(t, rec)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, 604800, cookie.MaxAge)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
			assert.False(t, cookie.Secure)
		})
	}
}

func TestSessionCookie_MaxAgeFollowsSessionExpiry(t *testing.T) {
	tests := []struct {
		name       string
		expiresAt  time.Time
		wantMaxAge int
	}{
		{name: "configured duration", expiresAt: time.Now().Add(48 * time.Hour), wantMaxAge: 172800},
		{name: "no expiry reported", wantMaxAge: 604800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				authenticateFn: func(context.Context, string, string) (models.User, error) { return testUser, nil },
				createSessionFn: func(_ context.Context, userID string) (models.Session, string, error) {
					return models.Session{UserID: userID, ExpiresAt: tt.expiresAt}, "raw-token", nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			body := strings.NewReader(`{"email":"jane@example.com","password":"secret"}`)
			rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/login", body))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMaxAge, findSessionCookie(t, rec).MaxAge)
		})
	}
}

func TestSessionCookie_SecureInProduction(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(context.Context, string, string) (models.User, error) { return testUser, nil },
	}
	cfg := config.StructuredConfig{App: config.App{Env: config.EnvProduction}}
	h := NewHandler(&service.Services{AuthService: auth}, cfg, logger.Nop())

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, findSessionCookie(t, rec).Secure)
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		deleteErr   error
		wantDeleted []string
	}{
		{name: "with session", cookie: "good", wantDeleted: []string{"good"}},
		{name: "without session"},
		{name: "delete failure still clears cookie", cookie: "good", deleteErr: errors.New("db down"), wantDeleted: []string{"good"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted []string
			auth := &fakeAuthService{
				getSessionFn: sessionFor("good"),
				deleteSessionFn: func(_ context.Context, token string) error {
					deleted = append(deleted, token)
					return tt.deleteErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			if tt.cookie != "" {
				req = withSessionCookie(req, tt.cookie)
			}
			rec := serve(h, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantDeleted, deleted)
			cookie := findSessionCookie(t, rec)
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	auth := &fakeAuthService{getSessionFn: sessionFor("good")}
	h := newTestHandler(&service.Services{AuthService: auth})

	t.Run("anonymous", func(t *testing.T) {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/auth/user", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":null}`, rec.Body.String())
	})

	t.Run("signed in", func(t *testing.T) {
		rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/auth/user", nil), "good"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{"id":"user-1","email":"jane@example.com","name":"Jane"}}`, rec.Body.String())
	})
}
