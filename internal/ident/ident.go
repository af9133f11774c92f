// Package ident produces run identifiers and input digests.
//
// Run IDs are UUIDv7 so they sort by creation time in the history table.
// Input digests are content addresses: the same puzzle input always yields
// the same digest, regardless of line endings or Unicode normal form.
package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// DomainInput separates input digests from any other hash we may add later.
const DomainInput = "aoc2023/input/v1"

// Generator produces run IDs.
type Generator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable run IDs.
// It is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a hyphenated UUIDv7. Panics if the random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs, for tests.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator returns a generator that yields ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next ID. Panics once all IDs are used so that a test
// recording more runs than it planned fails loudly.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// InputDigest returns the hex SHA-256 of the normalized input.
// Normalization: CRLF becomes LF, trailing blank lines are dropped and the
// text is put in NFC form.
func InputDigest(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return hashWithDomain(DomainInput, norm.NFC.Bytes([]byte(text)))
}

// hashWithDomain computes SHA256(domain || 0x00 || data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
