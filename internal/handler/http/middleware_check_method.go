// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path that exists under a different method is answered with a JSON 404
// instead of chi's 405, so API callers cannot probe which methods a route
// supports. Route patterns with parameters such as /api/documents/{id} are
// matched through [chi.Mux.Match].
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeErrorMessage(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
