// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials carries the admin login form.
// Password is plaintext only for the lifetime of the login request and must
// never be logged or persisted.
type Credentials struct {
	// Login is the configured admin account name.
	Login string `json:"login"`

	// Password is compared against the configured bcrypt hash.
	Password string `json:"password"`
}

// LoginResponse is returned by a successful admin login.
type LoginResponse struct {
	// Token is the signed bearer token to put into the Authorization header.
	Token string `json:"token"`

	// ExpiresAt is the token expiry as a Unix timestamp (seconds).
	ExpiresAt int64 `json:"expires_at"`
}
