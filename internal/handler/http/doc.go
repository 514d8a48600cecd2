// Package http implements the HTTP transport layer of the application.
// It provides the composable middleware pipeline (method validation,
// authentication gate, error normalization, request logging), route
// handlers for the auth API, and the uniform response envelope. All
// cross-cutting concerns are handled at this layer before requests reach
// the service layer.
package http
