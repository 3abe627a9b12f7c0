package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ComparePassword checks provided against the configured password, which
// may be stored in plain text or as a bcrypt hash. Plain values are compared
// in constant time. An empty configured password never matches.
func ComparePassword(configured, provided string) bool {
	if configured == "" {
		return false
	}

	if IsBcryptHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(provided)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) == 1
}
