// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the LexSight command-line client.
//
// Every invocation runs one subcommand against the server through
// [adapter.ServerAdapter]. The session cookie survives between invocations
// in a [SessionStore].
package client
