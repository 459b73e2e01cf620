// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddress = errors.New("no HTTP address configured")
	errListen    = errors.New("failed to bind HTTP address")
	errServe     = errors.New("HTTP server failed")
	errShutdown  = errors.New("HTTP server shutdown failed")
)
