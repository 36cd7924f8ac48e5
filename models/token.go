package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the session JWT issued by the Namaskah server at login.
//
// The client never verifies the signature (it does not hold the signing key);
// it only inspects the registered claims to decide whether the credential is
// still worth presenting. SignedString is the compact serialized form sent in
// the Authorization header and in the realtime auth handshake.
type Token struct {
	// Token is the parsed (unverified) JWT, used for claim inspection.
	// Excluded from JSON serialization; only the compact form travels.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set
	// (sub, exp, iat, iss, ...) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
