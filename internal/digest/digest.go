// Package digest provides the password digest strategies. The default,
// SHA256, is unsalted and kept for compatibility with existing accounts;
// Bcrypt and Argon2ID can be selected by configuration without changing any
// operation contract.
package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Hasher turns a plaintext password into a storable digest and checks a
// candidate against a stored digest.
type Hasher interface {
	Digest(password string) (string, error)
	Verify(password, digest string) bool
}

const (
	NameSHA256   = "sha256"
	NameBcrypt   = "bcrypt"
	NameArgon2ID = "argon2id"
)

// New returns the Hasher registered under name.
func New(name string) (Hasher, error) {
	switch name {
	case NameSHA256, "":
		return SHA256{}, nil
	case NameBcrypt:
		return Bcrypt{}, nil
	case NameArgon2ID:
		return Argon2ID{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// SHA256 is the hex-encoded, unsalted SHA-256 of the password.
type SHA256 struct{}

func (SHA256) Digest(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256) Verify(password, digest string) bool {
	candidate, _ := h.Digest(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
