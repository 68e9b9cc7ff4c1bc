// Package server runs the HTTP server: startup, signal handling and
// graceful shutdown followed by the release of registered resources.
package server
