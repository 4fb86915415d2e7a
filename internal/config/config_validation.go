// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. A failure here is fatal on purpose: every operation
// the service could perform afterwards would be meaningless, and encrypting
// under an implicit default key is the one mistake this layer exists to
// prevent.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.MessagesSecret == "":
		return fmt.Errorf("%w: messages", ErrMissingMasterSecret)
	case cfg.App.MarketplaceSecret == "":
		return fmt.Errorf("%w: marketplace", ErrMissingMasterSecret)
	case cfg.App.PostsSecret == "":
		return fmt.Errorf("%w: posts", ErrMissingMasterSecret)
	}

	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: hash key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Media.Dir == "" && cfg.Storage.Media.S3Bucket == "" {
		return fmt.Errorf("%w: either a media dir or an S3 bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Media.S3Bucket != "" && cfg.Storage.Media.S3Region == "" {
		return fmt.Errorf("%w: S3 bucket requires a region", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP listen address is required", ErrInvalidServerConfigs)
	}

	return nil
}

// validate checks the operator-console view of the configuration. The
// console needs the master secrets to open envelopes locally and a reachable
// service instance to fetch them from.
func (cfg *ClientConfig) validate() error {
	switch {
	case cfg.App.MessagesSecret == "":
		return fmt.Errorf("%w: messages", ErrMissingMasterSecret)
	case cfg.App.MarketplaceSecret == "":
		return fmt.Errorf("%w: marketplace", ErrMissingMasterSecret)
	case cfg.App.PostsSecret == "":
		return fmt.Errorf("%w: posts", ErrMissingMasterSecret)
	}

	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: hash key is required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
