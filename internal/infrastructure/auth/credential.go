package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredential checks the shared lecturer password against a bcrypt hash.
// A configured hash takes precedence; a plain password is hashed once when
// the credential is built.
type AdminCredential struct {
	hash     []byte
	fromHash bool
}

// HashAdminPassword returns a bcrypt hash of password. Out-of-range costs
// fall back to bcrypt.DefaultCost.
func HashAdminPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin password: %w", err)
	}
	return string(hash), nil
}

func NewAdminCredential(password, hash string, cost int) (*AdminCredential, error) {
	if h := strings.TrimSpace(hash); h != "" {
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &AdminCredential{hash: []byte(h), fromHash: true}, nil
	}

	// no password configured: nobody can log in
	if password == "" {
		return &AdminCredential{}, nil
	}

	h, err := HashAdminPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &AdminCredential{hash: []byte(h)}, nil
}

// UsesHash reports whether the credential came from a configured hash.
func (c *AdminCredential) UsesHash() bool {
	return c.fromHash
}

func (c *AdminCredential) Check(submitted string) bool {
	if len(c.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(submitted)) == nil
}
