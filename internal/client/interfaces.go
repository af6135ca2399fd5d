// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UserInterface is the interactive front end driven by [App].
type UserInterface interface {
	// Run blocks until the user leaves or ctx is cancelled.
	Run(ctx context.Context) error
}
