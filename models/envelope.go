// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope codes. CodeOK marks success; every other value is an error and
// mirrors the HTTP status the envelope is sent with.
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeInternal     = 500
)

// Envelope is the uniform body of every API response:
//
//	{"code": 0, "message": "", "data": {...}}
//
// The invariant code == 0 ⟺ data present ∧ message empty holds for every
// value built with [Ok] or [Fail]; build envelopes only through them.
type Envelope[T any] struct {
	// Code is 0 on success, otherwise one of the Code* error constants.
	Code int `json:"code"`

	// Message is a human-readable error description. Empty on success.
	Message string `json:"message"`

	// Data is the payload. It is nil (JSON null) for every error envelope.
	Data *T `json:"data"`
}

// Ok wraps data into a success envelope.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Code: CodeOK, Data: &data}
}

// Fail builds an error envelope. A zero code is promoted to [CodeInternal]
// so that an error envelope can never be mistaken for success.
func Fail(code int, message string) Envelope[any] {
	if code == CodeOK {
		code = CodeInternal
	}

	return Envelope[any]{Code: code, Message: message}
}

// IsOK reports whether the envelope carries a successful result.
func (e Envelope[T]) IsOK() bool {
	return e.Code == CodeOK && e.Data != nil
}
