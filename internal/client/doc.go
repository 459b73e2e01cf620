// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the blog administration command-line client.
//
// It maps a command and its arguments onto [adapter.BlogAdapter] calls and
// prints the returned data as indented JSON.
package client
