package security

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinSecretKeyLength = 32

	secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses an insecure placeholder value")
	ErrSecretKeyTooShort    = fmt.Errorf("SECRET_KEY must be at least %d characters", MinSecretKeyLength)
)

var placeholderSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"changeme": {},
	"secret":   {},
}

// ValidateSecretKey rejects keys that are empty, shorter than
// MinSecretKeyLength or copied from example configuration.
func ValidateSecretKey(secret string) error {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return ErrSecretKeyMissing
	}
	if _, ok := placeholderSecretKeys[strings.ToLower(trimmed)]; ok {
		return ErrSecretKeyPlaceholder
	}
	if len(trimmed) < MinSecretKeyLength {
		return ErrSecretKeyTooShort
	}
	return nil
}

// GenerateSecretKey returns a random key suitable for SECRET_KEY.
func GenerateSecretKey(length int) (string, error) {
	if length < MinSecretKeyLength {
		length = MinSecretKeyLength
	}
	return RandomString(length, secretKeyAlphabet)
}
