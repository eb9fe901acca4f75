package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed or freshly issued JWT together with the values the
// application actually consumes: the signed compact string that travels over
// the wire and the username carried in the subject claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"access_token"`
	Username     string `json:"-"`
}
