// Package id produces opaque identifiers for correlating log lines and spans.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates identifiers.
type Generator interface {
	NewID() (string, error)
}

const defaultRandomBytes = 8

// RandomGenerator returns hex-encoded random IDs of a fixed byte length.
type RandomGenerator struct {
	size int
}

func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = defaultRandomBytes
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
