package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jasonyi-dev/ganttrack/models"
)

// GenerateJWTToken issues an HMAC-SHA256 signed JWT.
//
// Claims:
//   - Issuer    (iss): the configured service identifier
//   - Subject   (sub): the username the token was issued for
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
//
// signKey is the user's personal secret key, not a service-wide secret.
// All parameters are required.
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken verifies tokenString against the given signing
// key and expected issuer, and extracts the subject username.
//
// Validation covers the signature, the iss claim, and the exp claim.
// Expiry failures surface as jwt.ErrTokenExpired via the wrapped error
// chain, so callers can distinguish them with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ParseUsernameFromJWT extracts the subject claim without verifying the
// signature. Signing keys are per-user, so the server must learn which user
// a token claims to belong to before it can look up the key that verifies
// it.
func ParseUsernameFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject error")
	}

	return sub, nil
}

// TokenExpiresWithin reports whether the token's exp claim falls inside the
// next window. Used to renew tokens shortly before they lapse.
func TokenExpiresWithin(token models.Token, window time.Duration) bool {
	if token.Token == nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now().Add(window))
}
