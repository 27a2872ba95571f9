package server

// Server is a running binary's set of listeners: the ledger API or the
// local content gateway.
type Server interface {
	// RunServer serves until a shutdown signal arrives or a listener
	// fails, then shuts every listener down.
	RunServer()

	// Shutdown stops all listeners, letting in-flight requests finish.
	Shutdown()
}
