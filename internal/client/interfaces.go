// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run executes the subcommand named by args[0].
	Run(ctx context.Context, args []string) error
}

// SessionStore keeps the session token between invocations. Saving an
// empty token forgets the session.
type SessionStore interface {
	Load() (string, error)
	Save(token string) error
}
