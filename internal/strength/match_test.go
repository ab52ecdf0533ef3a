package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/varalys/passcheck/internal/wordlist"
)

func TestDictionaryMatch(t *testing.T) {
	dict := wordlist.NewSet("monkey", "dragon")
	assert.True(t, DictionaryMatch("MyMonkey99", dict))
	assert.True(t, DictionaryMatch("dragon", dict))
	assert.False(t, DictionaryMatch("m0nkey", dict))
	assert.False(t, DictionaryMatch("monkey", wordlist.Set{}))
}

func TestCommonPasswordMatch(t *testing.T) {
	common := wordlist.NewSet("letmein")
	assert.True(t, CommonPasswordMatch("LetMeIn", common))
	assert.False(t, CommonPasswordMatch("letmein!", common), "exact match only")
	assert.False(t, CommonPasswordMatch("", common))
}

func TestBreached(t *testing.T) {
	common := wordlist.NewSet("letmein")
	assert.True(t, Breached("letmein", common))
	assert.False(t, Breached("LetMeIn", common), "digest of the raw password")
	assert.False(t, Breached("letmein", wordlist.Set{}))
	assert.Equal(t, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8", sha1Hex("password"))
}
