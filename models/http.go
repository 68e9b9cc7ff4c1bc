package models

import "time"

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse wraps the current session user. User is null for anonymous
// callers.
type UserResponse struct {
	User *SessionUser `json:"user"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`

	// SupportedTypes is set when an upload is rejected for its file type.
	SupportedTypes string `json:"supportedTypes,omitempty"`

	// ExtractedText echoes what little text was found when an extraction
	// yields too short a result.
	ExtractedText *string `json:"extractedText,omitempty"`
}

// ExtractResponse is the JSON body of a successful POST /api/extract-text.
type ExtractResponse struct {
	Success    bool   `json:"success"`
	Text       string `json:"text"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	TextLength int    `json:"textLength"`
}

// DocumentResponse is the wire form of a [Document] consumed by the UI.
type DocumentResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      DocumentType `json:"type"`
	Content   string       `json:"content"`
	CreatedAt string       `json:"created_at"`
}

// NewDocumentResponse converts a stored document into its wire form with an
// ISO-8601 creation timestamp.
func NewDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Name:      d.Name,
		Type:      d.Type,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// CreateDocumentResponse is returned by POST /api/documents.
type CreateDocumentResponse struct {
	ID string `json:"id"`
}

// AnalysisRequest carries the text to be summarized or scanned for risks.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// SummaryResponse is returned by POST /api/analysis/summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// RiskResponse is returned by the risk analysis endpoints.
type RiskResponse struct {
	RiskSummary string `json:"riskSummary"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Build   string `json:"build,omitempty"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
