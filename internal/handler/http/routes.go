package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Routes are registered flat on the root mux so
// [CheckHTTPMethod] can match them.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withAccessGate, h.withSession)

	// authentication
	router.Post("/api/auth/signup", h.signup)
	router.Post("/api/auth/login", h.login)
	router.Post("/api/auth/logout", h.logout)
	router.Get("/api/auth/user", h.currentUser)

	// documents; create and delete are guarded by the service
	router.Get("/api/documents", h.listDocuments)
	router.Post("/api/documents", h.createDocument)
	router.Get("/api/documents/{id}", requireSession(h.getDocument))
	router.Delete("/api/documents/{id}", h.deleteDocument)
	router.Post("/api/documents/{id}/risk", requireSession(h.analyzeDocumentRisk))

	router.Post("/api/extract-text", requireSession(h.extractText))
	router.Post("/api/analysis/summarize", requireSession(h.summarizeClause))
	router.Post("/api/analysis/risk", requireSession(h.analyzeRisk))

	router.Get("/api/version", h.getServerVersion)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
