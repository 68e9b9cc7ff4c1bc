// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoFileProvided is reported when an upload lacks the "file" field.
	ErrNoFileProvided = errors.New("No file provided")

	// ErrUnauthorized is reported by API routes that need a session.
	ErrUnauthorized = errors.New("unauthorized")
)
