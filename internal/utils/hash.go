package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// secretKeyBytes is the byte length of a freshly generated per-user token
// signing key.
const secretKeyBytes = 256

// HashPassword hashes a password with SHA-256, salted with the username
// written backwards. The same transformation is applied at registration and
// at login, so the stored hash can be compared directly.
func HashPassword(username, password string) string {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write([]byte(reverseString(username)))
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateSecretKey returns a random hex string used as a per-user JWT
// signing key. Each user gets their own key at registration, so revoking a
// single account never affects other sessions.
func GenerateSecretKey() (string, error) {
	buf := make([]byte, secretKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// reverseString reverses s rune by rune.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
