package tagpass

import (
	"errors"
	"testing"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt(DefaultSaltLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(salt) != DefaultSaltLength {
		t.Errorf("len(salt) = %d, want %d", len(salt), DefaultSaltLength)
	}
}

func TestGenerateSalt_Unique(t *testing.T) {
	s1, _ := GenerateSalt(DefaultSaltLength)
	s2, _ := GenerateSalt(DefaultSaltLength)

	if string(s1) == string(s2) {
		t.Error("consecutive salts should differ")
	}
}

func TestGenerateSalt_TooShort(t *testing.T) {
	_, err := GenerateSalt(4)
	if !errors.Is(err, ErrSaltTooShort) {
		t.Errorf("expected ErrSaltTooShort, got %v", err)
	}
}
