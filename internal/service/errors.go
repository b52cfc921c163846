package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required fields are missing
	// or malformed before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single generic failure for login: it
	// covers both unknown username and wrong password so that callers
	// cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned by login only after the password has
	// been verified, so it never leaks account status to guessers.
	ErrAccountDisabled = errors.New("account disabled, contact support")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (bad signature, expired, malformed, wrong issuer) into one value so
	// clients cannot distinguish signature faults from expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")

	// ErrAccountInactiveOrMissing is returned by Authenticate when the
	// account referenced by valid token claims no longer exists or has
	// been deactivated.
	ErrAccountInactiveOrMissing = errors.New("account inactive or not found")

	// ErrTokenCreationFailed wraps signing failures of the token issuer.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnknownRole is returned by the administrative role update when
	// the requested role is not part of the closed enumeration.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidStatusTransition is returned when an order status update
	// violates the lifecycle state machine.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// ErrNotOrderOwner is returned when a client requests an order that
	// belongs to another client.
	ErrNotOrderOwner = errors.New("order belongs to another client")
)
