package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/lexsight/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestDecideAccess(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		hasSession bool
		want       string
	}{
		{name: "anonymous on home", path: "/home", want: "/login?callbackUrl=%2Fhome"},
		{name: "anonymous on nested dashboard", path: "/dashboard/reports", want: "/login?callbackUrl=%2Fdashboard%2Freports"},
		{name: "anonymous on profile", path: "/profile", want: "/login?callbackUrl=%2Fprofile"},
		{name: "prefix match without separator", path: "/homework", want: "/login?callbackUrl=%2Fhomework"},
		{name: "anonymous on login", path: "/login"},
		{name: "anonymous on landing", path: "/"},
		{name: "session on login", path: "/login", hasSession: true, want: "/home"},
		{name: "session on signup", path: "/signup", hasSession: true, want: "/home"},
		{name: "session on nested login path", path: "/login/help", hasSession: true},
		{name: "session on home", path: "/home", hasSession: true},
		{name: "api bypasses gate", path: "/api/documents"},
		{name: "static assets bypass gate", path: "/_next/static/chunk.js"},
		{name: "images bypass gate", path: "/_next/image"},
		{name: "hmr bypasses gate", path: "/_next/webpack-hmr"},
		{name: "favicon bypasses gate", path: "/favicon.ico"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decideAccess(tt.path, tt.hasSession)
			assert.Equal(t, tt.want, got.Redirect)
		})
	}
}

func TestWithAccessGate(t *testing.T) {
	h := newTestHandler(&service.Services{})

	tests := []struct {
		name         string
		path         string
		cookie       string
		rawCookie    string
		wantStatus   int
		wantLocation string
	}{
		{name: "redirect to login", path: "/home", wantStatus: http.StatusTemporaryRedirect, wantLocation: "/login?callbackUrl=%2Fhome"},
		{name: "empty cookie counts as absent", path: "/home", rawCookie: SessionCookieName + "=", wantStatus: http.StatusTemporaryRedirect, wantLocation: "/login?callbackUrl=%2Fhome"},
		{name: "redirect to home", path: "/signup", cookie: "stale-token", wantStatus: http.StatusTemporaryRedirect, wantLocation: "/home"},
		{name: "pass through", path: "/about", wantStatus: http.StatusOK},
		{name: "invalid cookie still passes protected page", path: "/profile", cookie: "stale-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req = withSessionCookie(req, tt.cookie)
			}
			if tt.rawCookie != "" {
				req.Header.Set("Cookie", tt.rawCookie)
			}
			rec := httptest.NewRecorder()

			h.withAccessGate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
