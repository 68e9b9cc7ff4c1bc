// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers and middleware for the JSON API
// and the gated front-end pages. Request tracing, access logging, response
// compression, the page access gate and session resolution are handled here
// before requests are delegated to the service layer.
package http
