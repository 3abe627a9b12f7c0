// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// server invariants before it is used at startup.
//
// An empty DSN is accepted: the server then starts in degraded mode and
// reports the database as disconnected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.AdminEmail == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *PrinterConfig) validate() error {
	if cfg.Journal.DSN == "" || strings.Contains(cfg.Journal.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.BatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
