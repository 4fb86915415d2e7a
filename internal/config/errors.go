package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid. Any of them aborts startup.
var (
	// ErrMissingMasterSecret indicates that one of the three master
	// secrets is empty. There is no default key to fall back to: running
	// without an explicit secret would encrypt everything under a value
	// an attacker can read from the source.
	ErrMissingMasterSecret = errors.New("missing master secret")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing transport hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or no media backend selected).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs indicates invalid outbound client settings
	// (for example, missing target address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
