// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"
)

var (
	// protectedPrefixes need a session cookie.
	protectedPrefixes = []string{"/home", "/dashboard", "/profile"}

	// authOnlyPaths are pointless for a visitor who already has a session.
	authOnlyPaths = []string{"/login", "/signup"}

	// gateExcludedPrefixes bypass the gate entirely.
	gateExcludedPrefixes = []string{
		"/api",
		"/_next/static",
		"/_next/image",
		"/_next/webpack-hmr",
		"/favicon.ico",
	}
)

const (
	loginPath = "/login"
	homePath  = "/home"
)

// gateDecision is the outcome of [decideAccess]. An empty Redirect lets the
// request through.
type gateDecision struct {
	Redirect string
}

// decideAccess looks only at whether a session cookie is present, never at
// whether the session is valid.
//
//   - no cookie and a protected path: redirect to /login?callbackUrl=<path>
//   - a cookie and exactly /login or /signup: redirect to /home
func decideAccess(path string, hasSession bool) gateDecision {
	for _, prefix := range gateExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return gateDecision{}
		}
	}

	if !hasSession {
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return gateDecision{Redirect: loginPath + "?callbackUrl=" + url.QueryEscape(path)}
			}
		}
		return gateDecision{}
	}

	for _, p := range authOnlyPaths {
		if path == p {
			return gateDecision{Redirect: homePath}
		}
	}

	return gateDecision{}
}

// withAccessGate redirects page requests with 307 according to
// [decideAccess].
func (h *Handler) withAccessGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := decideAccess(r.URL.Path, sessionToken(r) != "")
		if decision.Redirect == "" {
			next.ServeHTTP(w, r)
			return
		}

		http.Redirect(w, r, decision.Redirect, http.StatusTemporaryRedirect)
	})
}
