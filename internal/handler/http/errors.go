// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers and the authentication middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyRequestBody is returned when a JSON body was expected but the
	// request had none.
	ErrEmptyRequestBody = errors.New("empty request body")

	// ErrTrailingData is returned when the JSON body holds more than one
	// value.
	ErrTrailingData = errors.New("unexpected data after JSON body")
)
