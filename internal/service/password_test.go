package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "secret1" {
		t.Error("Hash() returned the plaintext")
	}

	if !hasher.Verify("secret1", hash) {
		t.Error("Verify() = false for the original password")
	}
	if hasher.Verify("secret2", hash) {
		t.Error("Verify() = true for a different password")
	}
}

func TestPasswordHasher_SaltRandomization(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt is not randomized")
	}
	if !hasher.Verify("secret1", first) || !hasher.Verify("secret1", second) {
		t.Error("Verify() = false for one of the salted hashes")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	for _, stored := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if hasher.Verify("secret1", stored) {
			t.Errorf("Verify(%q) = true, want false", stored)
		}
	}
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	hasher := NewPasswordHasher(0)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("bcrypt cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
