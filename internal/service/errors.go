package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrSessionCreation     = errors.New("session creation failed")

	ErrMustBeLoggedInToAdd    = errors.New("you must be logged in to add documents")
	ErrMustBeLoggedInToDelete = errors.New("you must be logged in to delete documents")
	ErrMustBeLoggedIn         = errors.New("you must be logged in")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrCannotDeleteDocument   = errors.New("document not found or you do not have permission to delete it")

	ErrAnalysisFailed = errors.New("analysis failed")
)
