// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateCuratorKey(t *testing.T) {
	tests := []struct {
		name       string
		surveyHash string
		salt       string
	}{
		{"standard", "0f6ecb18d1b0e9dd9a3f8c7f5a6b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f8a7b", "secret-salt"},
		{"empty hash", "", "salt"},
		{"empty salt", "abc123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateCuratorKey(tt.surveyHash, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateCuratorKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateCuratorKey(tt.surveyHash, tt.salt)
			if key != key2 {
				t.Error("GenerateCuratorKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.surveyHash != "" && tt.salt != "" {
				differentKey := GenerateCuratorKey(tt.surveyHash+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateCuratorKey() produced same key for different hashes")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateCuratorKey() contains padding characters")
			}
		})
	}
}

func TestValidateCuratorKey(t *testing.T) {
	surveyHash := "0f6ecb18d1b0e9dd9a3f8c7f5a6b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f8a7b"
	salt := "test-salt"
	validKey := GenerateCuratorKey(surveyHash, salt)

	tests := []struct {
		name       string
		surveyHash string
		curatorKey string
		salt       string
		wantErr    bool
	}{
		{"valid key", surveyHash, validKey, salt, false},
		{"wrong key", surveyHash, "wrong-key", salt, true},
		{"wrong hash", "different-hash", validKey, salt, true},
		{"wrong salt", surveyHash, validKey, "different-salt", true},
		{"empty key", surveyHash, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCuratorKey(tt.surveyHash, tt.curatorKey, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCuratorKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidCuratorKey {
				t.Errorf("ValidateCuratorKey() error = %v, want %v", err, ErrInvalidCuratorKey)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			// Should be deterministic
			hash2 := HashIP(tt.ip, tt.salt)
			if hash != hash2 {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different IPs should produce different hashes
	hash1 := HashIP("192.168.1.1", "salt")
	hash2 := HashIP("192.168.1.2", "salt")
	if hash1 == hash2 {
		t.Error("HashIP() produced same hash for different IPs")
	}

	// Different salts should produce different hashes
	hash3 := HashIP("192.168.1.1", "salt1")
	hash4 := HashIP("192.168.1.1", "salt2")
	if hash3 == hash4 {
		t.Error("HashIP() produced same hash for different salts")
	}
}

func BenchmarkGenerateCuratorKey(b *testing.B) {
	surveyHash := "0f6ecb18d1b0e9dd9a3f8c7f5a6b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f8a7b"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateCuratorKey(surveyHash, salt)
	}
}
