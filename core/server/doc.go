// Package server holds configuration for the HTTP API surface of the
// migrator. The server itself is assembled in cmd/start.go from the feature
// loader and middleware packages.
package server
