package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig controls bcrypt hashing of account passwords.
type PasswordConfig struct {
	BcryptCost int

	// Pepper, when set, is appended to every password before hashing, so a
	// leaked hash table cannot be cracked without the server-side secret.
	Pepper string
}

// NewPasswordConfig builds the hashing configuration from the environment.
// BCRYPT_COST defaults to 12 and must stay within 10 to 14; PASSWORD_PEPPER
// is optional.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// peppered applies the optional pepper to a plaintext password.
func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password with bcrypt at the configured cost.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
