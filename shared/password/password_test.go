package password_test

import (
	"errors"
	"strings"
	"testing"

	"resort/shared/password"
)

func TestHash(t *testing.T) {
	hashed, err := password.Hash("front-desk-2025")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if !strings.HasPrefix(hashed, "$2a$") {
		t.Errorf("expected bcrypt hash, got %s", hashed)
	}

	if _, err := password.Hash(""); !errors.Is(err, password.ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}

	if _, err := password.Hash(strings.Repeat("a", password.MaxLength+1)); !errors.Is(err, password.ErrTooLong) {
		t.Errorf("expected ErrTooLong, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("front-desk-2025")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "front-desk-2025", hash: hashed},
		{name: "wrong password", password: "front-desk-2024", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "front-desk-2025", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if err := password.Verify("x", "not-a-bcrypt-hash"); err == nil || errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected malformed hash error, got %v", err)
	}
}
