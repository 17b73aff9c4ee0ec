// Package server holds the HTTP server configuration and response helpers.
//
// The start command owns the Fiber application; this package defines the
// settings it reads (listen port, optional API key, CORS allow list and the
// deployment environment, which toggles stack traces in the recover
// middleware) and SendError, which maps service errors to 404, 400 or 500.
package server
