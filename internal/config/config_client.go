package config

import (
	"fmt"
	"time"
)

// ClientApp holds the secrets the operator console needs to open envelopes
// locally. The console never sends these anywhere; decryption happens on the
// operator's machine.
type ClientApp struct {
	// MessagesSecret is the master secret for message content and media.
	MessagesSecret string
	// MarketplaceSecret is the master secret for transaction payloads.
	MarketplaceSecret string
	// PostsSecret is the master secret for shared-post summaries.
	PostsSecret string
	// HashKey is the HMAC key used to sign outbound request bodies.
	HashKey string
}

// ClientAdapter holds network settings used by the console transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the target service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the operator-console view of the configuration, assembled
// from [StructuredConfig].
type ClientConfig struct {
	// App contains the secrets needed for local decryption.
	App ClientApp
	// Adapter contains the target service address and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the operator-console view of the
// merged configuration.
//
// It loads the base config via the same env/flags/JSON pipeline, maps only
// the fields the console runtime needs, and validates the resulting
// [ClientConfig]. Note that the base server-side validation is skipped: the
// console does not need a database or a listen address.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		buildUnvalidated()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			MessagesSecret:    cfg.App.MessagesSecret,
			MarketplaceSecret: cfg.App.MarketplaceSecret,
			PostsSecret:       cfg.App.PostsSecret,
			HashKey:           cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
