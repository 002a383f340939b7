package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSHA256 is a keyed, deterministic digest for high entropy tokens
// (refresh and activation tokens) that must be looked up by hash.
type HMACSHA256 struct {
	key []byte
}

func NewHMACSHA256(secret string) *HMACSHA256 {
	return &HMACSHA256{key: []byte(secret)}
}

// Hash returns the lowercase hex digest; it never fails.
func (s *HMACSHA256) Hash(plaintext string) ([]byte, error) {
	return s.digest(plaintext), nil
}

func (s *HMACSHA256) Verify(hashed, plaintext string) bool {
	return hmac.Equal([]byte(hashed), s.digest(plaintext))
}

func (s *HMACSHA256) digest(plaintext string) []byte {
	mac := hmac.New(sha256.New, s.key)
	_, _ = mac.Write([]byte(plaintext))
	return hex.AppendEncode(nil, mac.Sum(nil))
}
