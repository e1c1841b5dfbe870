package server

// Server is what cmd/server drives: RunServer blocks until a stop signal and
// Shutdown stops the listeners right away.
type Server interface {
	RunServer()
	Shutdown()
}
