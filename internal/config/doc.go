// Package config loads and validates the server configuration.
//
// Configuration is assembled from three sources merged in priority order —
// environment variables, command-line flags, and an optional JSON file —
// with built-in defaults filling the remaining gaps. The merged result is
// validated once at startup; security-sensitive values (the JWT signing
// secret in particular) have no defaults and fail startup when absent.
package config
