// Package testutil provides testing utilities for the wikilink service.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Fake provides generators for fake test data.
var Fake = &fakeGenerator{}

type fakeGenerator struct {
	counter int64
}

// String generates a random string with the given prefix.
func (f *fakeGenerator) String(prefix string) string {
	f.counter++
	return fmt.Sprintf("%s_%d_%s", prefix, f.counter, f.randomHex(4))
}

// WikiUsername generates a fake wiki username.
func (f *fakeGenerator) WikiUsername() string {
	firstNames := []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}
	f.counter++
	return fmt.Sprintf("%s%d", f.randomChoice(firstNames), f.counter)
}

// Email generates a fake email address.
func (f *fakeGenerator) Email() string {
	f.counter++
	return fmt.Sprintf("user%d_%s@example.com", f.counter, f.randomHex(4))
}

// Token generates a fake OAuth access token.
func (f *fakeGenerator) Token() string {
	return f.randomHex(20)
}

// Hex generates a random hex string of the given byte length.
func (f *fakeGenerator) Hex(byteLength int) string {
	return f.randomHex(byteLength)
}

// ID generates a fake ULID-like string.
func (f *fakeGenerator) ID() string {
	return strings.ToUpper(f.randomHex(13))
}

// PageTitle generates a fake stored page title (underscore convention).
func (f *fakeGenerator) PageTitle() string {
	words := []string{"History", "Science", "Music", "Biology", "Physics", "Geography"}
	f.counter++
	return fmt.Sprintf("%s_of_%s_%d", f.randomChoice(words), f.randomChoice(words), f.counter)
}

// Duration generates a random duration between min and max.
func (f *fakeGenerator) Duration(min, max time.Duration) time.Duration {
	minNanos := min.Nanoseconds()
	maxNanos := max.Nanoseconds()
	deltaNanos := f.randomInt64(0, maxNanos-minNanos)
	return time.Duration(minNanos + deltaNanos)
}

// PastTime generates a time in the past.
func (f *fakeGenerator) PastTime(maxOffset time.Duration) time.Time {
	offset := f.Duration(time.Minute, maxOffset)
	return time.Now().Add(-offset)
}

// Helpers

func (f *fakeGenerator) randomHex(byteLength int) string {
	bytes := make([]byte, byteLength)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (f *fakeGenerator) randomChoice(choices []string) string {
	idx := f.randomInt(0, len(choices))
	return choices[idx]
}

func (f *fakeGenerator) randomInt(min, max int) int {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return min + int(n.Int64())
}

func (f *fakeGenerator) randomInt64(min, max int64) int64 {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(max-min))
	return min + n.Int64()
}
