// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI, the background workers and the key-value storage
// into a single process lifecycle: workers start before the board is shown,
// and after the board closes pending snapshots are flushed before the
// storage is released.
package client
