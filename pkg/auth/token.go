package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 16

type TokenGeneratorInterface interface {
	Generate() (string, error)
}

// TokenGenerator produces opaque session tokens. The token carries no
// claims; it only means anything to the session store that issued it.
type TokenGenerator struct{}

func (g *TokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
