package types

// Rating is a coarse-grained strength label derived from a score.
type Rating string

const (
	RatingVeryWeak  Rating = "Very Weak"
	RatingWeak      Rating = "Weak"
	RatingModerate  Rating = "Moderate"
	RatingStrong    Rating = "Strong"
	RatingExcellent Rating = "Excellent"
)

// Ratings lists every label from weakest to strongest.
var Ratings = []Rating{RatingVeryWeak, RatingWeak, RatingModerate, RatingStrong, RatingExcellent}

// Rank returns the position of r in Ratings, or -1 for unknown labels.
func (r Rating) Rank() int {
	for i, x := range Ratings {
		if x == r {
			return i
		}
	}
	return -1
}

// RedactedPassword is the placeholder a Report carries instead of the raw password.
const RedactedPassword = "[REDACTED]"

// Report describes the strength assessment of a single password. It never
// contains the password itself, only values derived from it.
type Report struct {
	Password            string  `json:"password"`
	Length              int     `json:"length"`
	CharsetSize         int     `json:"charset_size"`
	EntropyBits         float64 `json:"entropy_bits"`
	TimeToCrackSeconds  float64 `json:"time_to_crack_seconds"`
	TimeToCrackReadable string  `json:"time_to_crack_readable"`
	GuessesPerSecond    float64 `json:"guesses_per_second"`
	DictionaryMatch     bool    `json:"dictionary_match"`
	CommonPasswordMatch bool    `json:"common_password_match"`
	RepeatedChars       bool    `json:"repeated_chars"`
	SequenceDetected    bool    `json:"sequence_detected"`
	KeyboardPattern     bool    `json:"keyboard_pattern"`
	Breached            bool    `json:"breached"`
	Score               float64 `json:"score"`
	Rating              Rating  `json:"rating"`

	// Optional zxcvbn second opinion; never affects Score or Rating.
	ZxcvbnScore     *int   `json:"zxcvbn_score,omitempty"`
	ZxcvbnCrackTime string `json:"zxcvbn_crack_time,omitempty"`
}

// PatternDetected reports whether any of the pattern flags is set.
func (r Report) PatternDetected() bool {
	return r.RepeatedChars || r.SequenceDetected || r.KeyboardPattern
}

// WordMatch reports whether the password hit a dictionary or common list.
func (r Report) WordMatch() bool {
	return r.DictionaryMatch || r.CommonPasswordMatch
}
