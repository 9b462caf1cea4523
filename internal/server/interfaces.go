// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
//
// Implementations block in [Server.RunServer] until shutdown is requested and
// release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a termination signal arrives.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most until ctx expires
	// for in-flight requests.
	Shutdown(ctx context.Context) error
}
