// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to the LexSight server.
//
// [ServerAdapter] hides the HTTP details: JSON encoding, multipart uploads
// and the session cookie. Error responses are mapped by mapHTTPError to the
// sentinel values in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/lexsight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the LexSight API.
type ServerAdapter interface {
	// SetSessionToken sets the cookie value attached to every request.
	SetSessionToken(token string)

	// SessionToken returns the current cookie value. Signup and Login
	// replace it with the token issued by the server; Logout clears it.
	SessionToken() string

	Signup(ctx context.Context, req models.SignupRequest) (models.SessionUser, error)
	Login(ctx context.Context, req models.LoginRequest) (models.SessionUser, error)
	Logout(ctx context.Context) error

	// CurrentUser returns nil when the session is missing or expired.
	CurrentUser(ctx context.Context) (*models.SessionUser, error)

	// ExtractText uploads a file and returns its extracted text.
	ExtractText(ctx context.Context, fileName string, data []byte) (models.ExtractResponse, error)

	ListDocuments(ctx context.Context) ([]models.DocumentResponse, error)
	CreateDocument(ctx context.Context, doc models.NewDocument) (string, error)
	GetDocument(ctx context.Context, id string) (models.DocumentResponse, error)
	DeleteDocument(ctx context.Context, id string) error

	SummarizeClause(ctx context.Context, text string) (string, error)
	AnalyzeRisk(ctx context.Context, text string) (string, error)
	AnalyzeDocumentRisk(ctx context.Context, id string) (string, error)

	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
