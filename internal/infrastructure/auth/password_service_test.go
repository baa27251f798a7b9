package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.Hash("tourist123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "tourist123" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !svc.Verify(hash, "tourist123") {
		t.Error("expected matching password to verify")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("expected mismatched password to fail verification")
	}
}

func TestNewPasswordService_ClampsInvalidCost(t *testing.T) {
	svc := NewPasswordService(99)

	hash, err := svc.Hash("host123")
	if err != nil {
		t.Fatalf("Hash returned error with clamped cost: %v", err)
	}
	if !svc.Verify(hash, "host123") {
		t.Error("expected verification to succeed with clamped cost")
	}
}
