// Package server runs the dashboard's HTTP server.
//
// It covers startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and a
// bounded graceful shutdown that lets in-flight requests finish.
package server
