package auth

import (
	"testing"

	"pulse/config"
	domainerrors "pulse/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	match, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// Hashing the same password twice must produce different stored values.
	first, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Both still verify.
	match, err := hasher.Check("secret123", first)
	assert.NoError(t, err)
	assert.True(t, match)
	match, err = hasher.Check("secret123", second)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "secret123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	match, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, match)

	// Test incorrect password
	match, err = hasher.Check("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, match)

	// Test empty password
	match, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_MalformedHashIsIntegrityError(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// A stored value that is not a bcrypt hash must surface as an
	// integrity failure, not as a plain mismatch.
	match, err := hasher.Check("secret123", "not-a-bcrypt-hash")
	assert.False(t, match)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIntegrity))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
