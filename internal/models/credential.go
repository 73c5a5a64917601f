package models

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialKind discriminates how a stored password is represented.
type CredentialKind int

const (
	// CredentialHashed is a bcrypt digest written by this service.
	CredentialHashed CredentialKind = iota
	// CredentialLegacy is a plaintext password carried over from seed/demo
	// data that predates hashing. Kept until those accounts are rotated.
	CredentialLegacy
)

// Credential is the tagged form of a stored password. Parsing happens once at
// the storage boundary so comparison logic is explicit instead of prefix
// sniffing scattered through handlers.
type Credential struct {
	Kind   CredentialKind
	Stored string
}

// ParseCredential classifies a stored password. bcrypt digests start with the
// "$2" modular crypt prefix; anything else is treated as legacy plaintext.
func ParseCredential(stored string) Credential {
	if strings.HasPrefix(stored, "$2") {
		return Credential{Kind: CredentialHashed, Stored: stored}
	}
	return Credential{Kind: CredentialLegacy, Stored: stored}
}

// Matches reports whether the candidate password matches the credential.
func (c Credential) Matches(password string) bool {
	switch c.Kind {
	case CredentialHashed:
		return bcrypt.CompareHashAndPassword([]byte(c.Stored), []byte(password)) == nil
	case CredentialLegacy:
		return subtle.ConstantTimeCompare([]byte(c.Stored), []byte(password)) == 1
	default:
		return false
	}
}

// HashPassword produces the stored form for a new password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
