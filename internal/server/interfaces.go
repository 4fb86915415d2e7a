// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package server

// Server is the lifecycle contract shared by the HTTP and gRPC transports.
// RunServer blocks until the server stops; Shutdown drains in-flight work
// and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
