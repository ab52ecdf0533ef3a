package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/varalys/passcheck/internal/types"
)

// WriteMarkdown renders r as a Markdown document with a GitHub alert that
// matches the rating.
func WriteMarkdown(w io.Writer, r types.Report) error {
	md := markdown.NewMarkdown(w)
	md.H1("Password Strength Report")
	md.PlainText("")

	rows := [][]string{
		{"Rating", "**" + string(r.Rating) + "**"},
		{"Score", FormatNumber(r.Score) + " / 100"},
		{"Length", strconv.Itoa(r.Length)},
		{"Charset size", strconv.Itoa(r.CharsetSize)},
		{"Entropy", FormatNumber(r.EntropyBits) + " bits"},
		{"Time to crack", r.TimeToCrackReadable + " @ " + FormatRate(r.GuessesPerSecond) + "/s"},
	}
	if r.ZxcvbnScore != nil {
		rows = append(rows, []string{"zxcvbn", strconv.Itoa(*r.ZxcvbnScore) + " / 4 (" + r.ZxcvbnCrackTime + ")"})
	}
	md.Table(markdown.TableSet{Header: []string{"Metric", "Value"}, Rows: rows})
	md.PlainText("")

	switch {
	case r.Breached:
		md.Cautionf("Exact match in the provided breached list. Do not use this password.")
	case r.WordMatch():
		md.Warningf("Dictionary or common password detected.")
	case r.PatternDetected():
		md.Importantf("Repeated, sequential or keyboard pattern detected.")
	case r.Rating.Rank() >= types.RatingStrong.Rank():
		md.Tip("No weaknesses detected.")
	default:
		md.Note("No patterns detected, but the password is short or uses few character classes.")
	}
	md.PlainText("")

	md.H2("Checks")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows: [][]string{
			{"Dictionary match", yesNo(r.DictionaryMatch)},
			{"Common password", yesNo(r.CommonPasswordMatch)},
			{"Repeated characters", yesNo(r.RepeatedChars)},
			{"Ascending sequence", yesNo(r.SequenceDetected)},
			{"Keyboard pattern", yesNo(r.KeyboardPattern)},
			{"Breached", yesNo(r.Breached)},
		},
	})
	return md.Build()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
