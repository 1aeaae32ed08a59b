// Package api contains the HTTP handlers for the poem generation service.
//
// Handlers decode and validate request DTOs, call the service layer, and
// translate service errors into sanitized JSON error responses. Raw errors
// never reach clients; they are redacted and logged with the request's
// trace ID.
package api
