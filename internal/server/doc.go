// Package server runs the blog's HTTP transport.
//
// It binds the listening socket before serving so that an unusable address
// fails startup, and it shuts the server down gracefully on SIGINT, SIGTERM,
// SIGQUIT or cancellation of the run context.
package server
