// Package middleware groups the Fiber middleware used by the HTTP server:
// rayid assigns a correlation ID to every request, auth guards the API with
// a shared key.
package middleware
