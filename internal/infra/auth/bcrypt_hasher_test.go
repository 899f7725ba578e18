package auth

import (
	"testing"

	"quill/config"
	domainerrors "quill/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func strictHasherConfig() *config.Config {
	return &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(strictHasherConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password matches its own hash
	assert.True(t, hasher.Check(password, hash))

	// Any other password does not
	assert.False(t, hasher.Check("WrongPass123", hash))
}

func TestBcryptHasher_CheckNeverPanicsOnGarbage(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// Malformed hash input only yields false, never an error or panic
	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("", ""))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)
	second, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(strictHasherConfig())

	weakPasswords := []string{
		"123",         // Too short
		"PASSWORD123", // No lowercase
		"password123", // No uppercase
		"PasswordABC", // No numbers
	}

	for _, weakPassword := range weakPasswords {
		err := hasher.ValidatePasswordStrength(weakPassword)
		assert.Error(t, err, "expected error for weak password: %s", weakPassword)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	}

	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123"))
}

func TestBcryptHasher_DefaultPolicyWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// Without a configured policy only the length bounds apply
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("alllowercasebutlong"))
}
