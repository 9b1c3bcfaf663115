package server

// Server is the lifecycle of the dashboard's HTTP server.
//
// RunServer blocks until a stop signal arrives and in-flight requests have
// drained. Shutdown may be called directly to stop early.
type Server interface {
	RunServer()
	Shutdown()
}
