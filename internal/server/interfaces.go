package server

import "context"

// Server defines the lifecycle contract of the relay server.
//
// Implementations block in [RunServer] until a termination signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
