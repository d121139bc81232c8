// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the foreground surface of the client. Run blocks until the user
// quits or ctx is canceled.
type UI interface {
	Run(ctx context.Context) error
}

// Loader reads the stored notes into memory. It runs before any worker or
// the UI can touch the collection.
type Loader interface {
	Load(ctx context.Context)
}
