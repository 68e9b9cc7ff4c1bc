package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the amount of randomness in a session token.
const sessionTokenBytes = 32

// GenerateSessionToken returns a new opaque session token: 32 bytes from
// crypto/rand encoded as unpadded URL-safe base64. The raw token is only
// ever given to the client; the server stores HashSessionToken(token).
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken()
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashSessionToken returns the hex-encoded SHA-256 digest of token. The
// digest is the lookup key of a session row.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
