package uid

import (
	"crypto/rand"
	"encoding/base64"
)

// Token generates unguessable opaque tokens, such as refresh and activation
// tokens. Output is unpadded base64url.
type Token struct {
	size int
}

// NewToken returns a generator of size random bytes per token. Sizes below
// 16 are raised to 32.
func NewToken(size int) *Token {
	if size < 16 {
		size = 32
	}
	return &Token{size: size}
}

func (t *Token) Generate() string {
	b := make([]byte, t.size)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
