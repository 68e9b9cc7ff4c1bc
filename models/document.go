package models

import "time"

// DocumentType is the closed category a stored document belongs to.
type DocumentType string

const (
	DocumentTypeContract DocumentType = "contract"
	DocumentTypeReport   DocumentType = "report"
	DocumentTypeProposal DocumentType = "proposal"
)

// Valid reports whether t is one of the supported document categories.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeContract, DocumentTypeReport, DocumentTypeProposal:
		return true
	default:
		return false
	}
}

// Document is a user-owned piece of text, either extracted from an uploaded
// file or pasted directly.
type Document struct {
	// ID is the unique identifier generated by the store (UUID).
	ID string `json:"id"`

	// UserID references the owning [User]. It never changes after creation.
	UserID string `json:"-"`

	// Name is the display name, usually the uploaded file name.
	Name string `json:"name"`

	// Content is the full extracted or pasted text.
	Content string `json:"content"`

	// Type is the document category.
	Type DocumentType `json:"type"`

	// CreatedAt is the creation timestamp; listings are ordered by it,
	// newest first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// NewDocument carries the caller-supplied fields of a document to create.
// The owner is never part of it: it comes from the resolved session.
type NewDocument struct {
	Name    string       `json:"name"`
	Content string       `json:"content"`
	Type    DocumentType `json:"type"`
}
