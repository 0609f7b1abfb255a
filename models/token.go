package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued token.
//
// It extends [jwt.RegisteredClaims] (iss, sub, iat, exp) with the username
// of the subject so that clients can display the identity without an extra
// lookup. Claims are ephemeral: they live inside the signed token and are
// never stored server-side.
type TokenClaims struct {
	// Username is the unique login of the user the token was issued for.
	Username string `json:"username,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
//
// UserID and Username are cached copies of the "sub" and "username" claims,
// populated during token construction or parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims provides access to the claim set carried by the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Username is the login extracted from the custom "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
