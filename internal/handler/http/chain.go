package http

import "net/http"

// interceptor is a named request decorator.
type interceptor struct {
	name string
	wrap func(http.Handler) http.Handler
}

// chain is an ordered list of interceptors; the first one is the outermost.
type chain []interceptor

// then wraps h with every interceptor of c so that c[0] sees the request
// first and the response last.
func (c chain) then(h http.Handler) http.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i].wrap(h)
	}
	return h
}

func (c chain) names() []string {
	names := make([]string, 0, len(c))
	for _, i := range c {
		names = append(names, i.name)
	}
	return names
}

// interceptors returns the fixed chain applied in front of the router.
//
// The access counter sits outside auth so that rejected attempts on
// protected paths are counted too; auth is innermost so that a rejected
// request never reaches a handler.
func (h *Handler) interceptors() chain {
	return chain{
		{name: "cors", wrap: h.withCORS()},
		{name: "trace_id", wrap: h.withTraceID},
		{name: "logging", wrap: h.withLogging},
		{name: "gzip", wrap: h.withGZip},
		{name: "recoverer", wrap: h.withRecoverer},
		{name: "access_counter", wrap: h.withAccessCount},
		{name: "auth", wrap: h.auth},
	}
}
