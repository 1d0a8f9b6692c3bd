package util

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrCodeMismatch = errors.New("code does not match")

// HashCode returns a bcrypt hash suitable for host.expect_hash.
func HashCode(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("code must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyCode compares a completed code against a bcrypt hash.
func VerifyCode(hash, code string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrCodeMismatch
	}
	return err
}
