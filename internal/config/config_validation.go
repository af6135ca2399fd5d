// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Durations must not be negative. Presence of individual settings is checked
// on the client view by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
