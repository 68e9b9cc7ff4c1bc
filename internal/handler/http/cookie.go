// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/lexsight/internal/config"
)

// SessionCookieName is the cookie carrying the raw session token.
const SessionCookieName = "session_token"

// sessionCookieMaxAge returns the cookie lifetime in seconds matching the
// stored session expiry.
func sessionCookieMaxAge(expiresAt time.Time) int {
	if expiresAt.IsZero() {
		return int(config.DefaultSessionDuration / time.Second)
	}
	maxAge := int(time.Until(expiresAt).Round(time.Second) / time.Second)
	if maxAge < 1 {
		// MaxAge 0 would turn it into a browser-session cookie
		return -1
	}
	return maxAge
}

// sessionToken returns the session cookie value. An empty value counts as
// no cookie.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge(expiresAt),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
