package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, iss) with the identity
// fields the middleware needs to rebuild an [AuthUser] without a second
// token parse: username, email and role. The subject claim carries the
// user ID encoded as a base-10 string.
type TokenClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// GetUserID extracts the user identifier from the "sub" (subject) claim
// and parses it as a base-10 int64.
func (c *TokenClaims) GetUserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(sub, 10, 64)
}

// Token wraps a signed JWT together with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// AuthUser is the identity context attached to a request after the auth
// middleware has verified the bearer token and re-checked the account.
type AuthUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}
