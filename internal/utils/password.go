// Package utils provides the credential-hashing and session-token helpers the
// services depend on. Hashes are only ever compared, never surfaced.
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest from plain at the given cost. The
// digest embeds its own salt and cost factor, so the digest string is all
// that gets persisted.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt digest. It
// runs in constant time with respect to the digest contents.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
