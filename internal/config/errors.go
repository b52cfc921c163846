package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrTokenSignKeyTooShort is returned when the JWT signing secret is
	// missing or shorter than [MinTokenSignKeyLength]. There is no fallback
	// secret: the process must not start without a strong key.
	ErrTokenSignKeyTooShort = errors.New("token sign key is missing or shorter than 32 characters")

	// ErrInvalidAuthConfigs is returned when the token issuer, token
	// duration, or bcrypt cost are unset or out of range.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs")

	// ErrInvalidStorageConfigs is returned when the database DSN is empty
	// or the driver is not one of the supported backends.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when HTTP address or request
	// timeout are unset.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
