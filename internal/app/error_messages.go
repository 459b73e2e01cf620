// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-blog HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the message field of error envelopes. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmptyID is returned when a route expecting an id gets an empty one.
	MsgEmptyID = "empty id"

	// MsgInvalidGzipBody is returned when a request declares gzip content
	// encoding but the body is not valid gzip.
	MsgInvalidGzipBody = "invalid gzip data"

	// MsgUnauthorized is returned when a protected route is called without
	// a usable Authorization header.
	MsgUnauthorized = "unauthorized"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match the admin account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgArticleNotFound is returned when no article has the requested id.
	MsgArticleNotFound = "article not found"

	// MsgQuoteNotFound is returned when there are no quotes to choose from.
	MsgQuoteNotFound = "no quotes found"

	// MsgRouteNotFound is returned for unknown routes and for known routes
	// called with an unsupported method.
	MsgRouteNotFound = "route not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
