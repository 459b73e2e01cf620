// Package http implements the HTTP transport layer of the blog.
//
// It exposes route wiring, controllers, and the interceptor chain applied
// to every request. Cross-cutting concerns such as CORS, request tracing,
// access logging, response compression, panic recovery, access counting and
// admin authentication are handled in this package before requests are
// delegated to the service layer. Every response body is a
// [models.Envelope].
package http
