// Package id generates prefixed base62 identifiers such as "dev_4fQz9KmW2pLx".
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

const (
	PrefixDevice = "dev"
)

// Generate returns a cryptographically random base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// NewDeviceID returns a fresh "dev_" identifier.
func NewDeviceID() (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return PrefixDevice + "_" + s, nil
}

// ValidatePrefix checks that prefixedID is "<expected>_<non-empty>".
func ValidatePrefix(prefixedID, expected string) error {
	prefix, rest, ok := strings.Cut(prefixedID, "_")
	if !ok || rest == "" {
		return fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	if prefix != expected {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expected, prefix)
	}
	return nil
}
