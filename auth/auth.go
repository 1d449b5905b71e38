// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCuratorKey = errors.New("invalid curator key")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateCuratorKey creates an HMAC-based curator key for a stored survey.
// Deterministic from the survey's content hash and the salt, so it can be
// verified without being stored.
func GenerateCuratorKey(surveyHash, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(surveyHash))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCuratorKey checks that the provided curator key is valid for the
// stored survey
func ValidateCuratorKey(surveyHash, curatorKey, salt string) error {
	expected := GenerateCuratorKey(surveyHash, salt)
	if !hmac.Equal([]byte(curatorKey), []byte(expected)) {
		return ErrInvalidCuratorKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy.
// Includes salt to prevent rainbow table attacks.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 8 bytes (16 hex chars) is enough for deduplication
	return hex.EncodeToString(sum[:8])
}
