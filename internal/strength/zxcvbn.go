package strength

import (
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// zxcvbnMaxRunes bounds the prefix handed to zxcvbn. Its matchers are
// superlinear in the input length.
const zxcvbnMaxRunes = 100

// zxcvbnOpinion returns the zxcvbn 0-4 score and its crack-time display for
// the first zxcvbnMaxRunes runes of pw.
func zxcvbnOpinion(pw string) (int, string) {
	if pw == "" {
		return 0, "instant"
	}
	if utf8.RuneCountInString(pw) > zxcvbnMaxRunes {
		pw = string([]rune(pw)[:zxcvbnMaxRunes])
	}
	res := zxcvbn.PasswordStrength(pw, nil)
	return res.Score, res.CrackTimeDisplay
}
