// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/pathmatch"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RecentArticlesLimit <= 0 {
		return fmt.Errorf("%w: recent articles limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: empty redis address", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminLogin == "" || !strings.HasPrefix(cfg.App.AdminPasswordHash, "$2") {
		return fmt.Errorf("%w: admin login and bcrypt password hash are required", ErrInvalidAppConfigs)
	}

	if _, err := pathmatch.ParseAll(cfg.Access.ProtectedPaths); err != nil {
		return fmt.Errorf("%w: protected paths: %w", ErrInvalidAccessConfigs, err)
	}
	if _, err := pathmatch.ParseAll(cfg.Access.ExemptPaths); err != nil {
		return fmt.Errorf("%w: exempt paths: %w", ErrInvalidAccessConfigs, err)
	}

	return nil
}
