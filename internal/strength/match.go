package strength

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/varalys/passcheck/internal/wordlist"
)

// DictionaryMatch reports whether any word of dict occurs as a substring of
// the case-folded password.
func DictionaryMatch(pw string, dict wordlist.Set) bool {
	if dict.Empty() {
		return false
	}
	lower := strings.ToLower(pw)
	found := false
	dict.Each(func(word string) bool {
		if strings.Contains(lower, word) {
			found = true
			return false
		}
		return true
	})
	return found
}

// CommonPasswordMatch reports whether the case-folded password is an exact
// member of common.
func CommonPasswordMatch(pw string, common wordlist.Set) bool {
	return common.Contains(strings.ToLower(pw))
}

// sha1Hex returns the lowercase hex SHA-1 digest of s. It is an equality key
// only, not credential storage.
func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// breachIndex holds the SHA-1 digests of a common-password set.
type breachIndex map[string]struct{}

func newBreachIndex(common wordlist.Set) breachIndex {
	if common.Empty() {
		return nil
	}
	idx := make(breachIndex, common.Len())
	common.Each(func(word string) bool {
		idx[sha1Hex(word)] = struct{}{}
		return true
	})
	return idx
}

// breached reports whether the digest of the raw password matches any entry.
func (b breachIndex) breached(pw string) bool {
	if len(b) == 0 {
		return false
	}
	_, ok := b[sha1Hex(pw)]
	return ok
}

// Breached reports whether the raw password hashes to the same SHA-1 as an
// entry of common. Unlike CommonPasswordMatch the password is not case-folded.
func Breached(pw string, common wordlist.Set) bool {
	return newBreachIndex(common).breached(pw)
}
