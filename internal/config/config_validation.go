// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package config

import "golang.org/x/crypto/bcrypt"

// MinTokenSignKeyLength is the minimum accepted length of the JWT signing
// secret. Short secrets make HS256 brute-forceable; startup refuses them.
const MinTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Validation runs once at process start, so a misconfigured signing secret
// is a fatal startup error rather than a per-request surprise.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Auth.TokenSignKey) < MinTokenSignKeyLength {
		return ErrTokenSignKeyTooShort
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if d := cfg.Storage.DB.Driver; d != "pgx" && d != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
