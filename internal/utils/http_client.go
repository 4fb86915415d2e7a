// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package utils

import "github.com/go-resty/resty/v2"

// HTTPClient embeds *resty.Client so adapters can use the full resty
// surface while the construction point stays in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection
// pool and configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
