package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the blog's transport server.
type Server interface {
	// RunServer serves requests and blocks until ctx is cancelled or a stop
	// signal arrives, then shuts down gracefully. A nil error means the
	// server stopped cleanly.
	RunServer(ctx context.Context) error

	// Addr returns the address the server is bound to.
	Addr() net.Addr
}
