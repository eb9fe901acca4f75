package server

// Server is the lifecycle contract of the process's transport server.
// RunServer blocks until a stop signal arrives and the listener has drained;
// Shutdown may also be called directly to stop serving.
type Server interface {
	RunServer()
	Shutdown()
}
