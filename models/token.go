package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role values embedded in issued tokens. The role claim mirrors the Admin
// flag of the account at issue time; it is informational only — authorization
// decisions always re-resolve the account record.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// TokenClaims is the claim set carried by every issued session token.
// It extends the registered claims with a single Role claim.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is "Admin" or "User", derived from the account's Admin flag
	// at the moment the token was issued.
	Role string `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Login is a cached copy of the "sub" (subject) claim, populated during
// token construction or parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set (sub, exp, iat, role).
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Login is the account login extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	Login string `json:"-"`
}

// GetLogin extracts the account login from the token's "sub" (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetLogin() (string, error) {
	login, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	return login, nil
}

// IsAdminRole reports whether the token was issued for an administrator.
// The claim is informational; callers must still re-resolve the account.
func (t *Token) IsAdminRole() bool {
	return t.Role == RoleAdmin
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
