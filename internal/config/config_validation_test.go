package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  strings.Repeat("k", MinTokenSignKeyLength),
			TokenIssuer:   "wareflow",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
				DSN:    "postgres://localhost:5432/wareflow",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := validTestConfig().validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenSignKey = "" },
			wantErr: ErrTokenSignKeyTooShort,
		},
		{
			name:    "short sign key",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenSignKey = "too-short" },
			wantErr: ErrTokenSignKeyTooShort,
		},
		{
			name:    "missing issuer",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "bcrypt cost below range",
			mutate:  func(c *StructuredConfig) { c.Auth.BcryptCost = bcrypt.MinCost - 1 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *StructuredConfig) { c.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_SQLiteDriverAccepted(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.Driver = "sqlite3"
	cfg.Storage.DB.DSN = "wareflow.db"

	if err := cfg.validate(); err != nil {
		t.Fatalf("expected sqlite3 driver to validate, got: %v", err)
	}
}
