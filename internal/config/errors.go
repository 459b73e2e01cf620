package config

import "errors"

var (
	// ErrConfigFileNotRead is returned when the configuration file is
	// missing or unreadable.
	ErrConfigFileNotRead = errors.New("error reading config file")

	// ErrConfigFileMalformed is returned when the configuration file cannot
	// be decoded.
	ErrConfigFileMalformed = errors.New("malformed config file")

	// ErrInvalidServerConfigs indicates an unusable listening address or
	// HTTP surface setting.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates a missing database DSN or Redis
	// address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates missing token or admin settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAccessConfigs indicates a path rule that cannot be compiled.
	ErrInvalidAccessConfigs = errors.New("invalid access configuration")
)
