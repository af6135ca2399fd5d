package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing service address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN). The session
	// credential must survive restarts, so an in-memory database is refused.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
