package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of plain.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches reports whether plain matches hash. A malformed hash is an error;
// a plain mismatch is not.
func Matches(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
