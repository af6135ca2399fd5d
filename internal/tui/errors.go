// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")
