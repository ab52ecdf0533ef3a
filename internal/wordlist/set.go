package wordlist

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	xxhash "github.com/cespare/xxhash/v2"
)

// bloomMinEntries is the set size from which a bloom filter guards lookups.
const bloomMinEntries = 4096

// Set is an immutable collection of lowercase, trimmed, non-empty words.
// The zero value is an empty set.
type Set struct {
	words  map[string]struct{}
	filter *bloom.BloomFilter
	sum    uint64
}

// NewSet builds a Set, normalizing each word the same way the file loader does.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = normalize(w); w != "" {
			m[w] = struct{}{}
		}
	}
	return build(m)
}

// Merge returns the union of the given sets.
func Merge(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s.words)
	}
	m := make(map[string]struct{}, n)
	for _, s := range sets {
		for w := range s.words {
			m[w] = struct{}{}
		}
	}
	return build(m)
}

func build(m map[string]struct{}) Set {
	s := Set{words: m}
	for w := range m {
		s.sum ^= xxhash.Sum64String(w)
	}
	if len(m) >= bloomMinEntries {
		s.filter = bloom.NewWithEstimates(uint(len(m)), 0.001)
		for w := range m {
			s.filter.AddString(w)
		}
	}
	return s
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Len returns the number of words.
func (s Set) Len() int { return len(s.words) }

// Empty reports whether the set has no words.
func (s Set) Empty() bool { return len(s.words) == 0 }

// Contains reports whether word is an exact member. Callers pass an already
// lowercased word.
func (s Set) Contains(word string) bool {
	if len(s.words) == 0 {
		return false
	}
	if s.filter != nil && !s.filter.TestString(word) {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Each calls fn for every word until fn returns false. Order is unspecified.
func (s Set) Each(fn func(word string) bool) {
	for w := range s.words {
		if !fn(w) {
			return
		}
	}
}

// Fingerprint is an order-independent digest of the set's contents. Two sets
// with the same words share a fingerprint.
func (s Set) Fingerprint() uint64 { return s.sum }
