package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/varalys/passcheck/internal/audit"
	"github.com/varalys/passcheck/internal/types"
)

// PrintTable renders r as a two-column metric table.
func PrintTable(w io.Writer, r types.Report) error {
	t := tablewriter.NewWriter(w)
	t.Header("Metric", "Value")
	rows := [][]string{
		{"Rating", string(r.Rating)},
		{"Score", FormatNumber(r.Score)},
		{"Length", strconv.Itoa(r.Length)},
		{"Charset size", strconv.Itoa(r.CharsetSize)},
		{"Entropy (bits)", FormatNumber(r.EntropyBits)},
		{"Time to crack", r.TimeToCrackReadable},
		{"Guesses/s", FormatRate(r.GuessesPerSecond)},
		{"Flags", Flags(r)},
	}
	if r.ZxcvbnScore != nil {
		rows = append(rows, []string{"zxcvbn", strconv.Itoa(*r.ZxcvbnScore) + "/4, " + r.ZxcvbnCrackTime})
	}
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

// PrintBatchTable renders one row per report, numbered from 1.
func PrintBatchTable(w io.Writer, reports []types.Report) error {
	t := tablewriter.NewWriter(w)
	t.Header("#", "Length", "Entropy", "Crack time", "Score", "Rating", "Flags")
	for i, r := range reports {
		if err := t.Append(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Length),
			FormatNumber(r.EntropyBits),
			r.TimeToCrackReadable,
			FormatNumber(r.Score),
			string(r.Rating),
			Flags(r),
		); err != nil {
			return err
		}
	}
	return t.Render()
}

// PrintHistory renders audit records, one row each, in the given order.
func PrintHistory(w io.Writer, records []audit.AnalysisRecord) error {
	t := tablewriter.NewWriter(w)
	t.Header("Time", "Mode", "Length", "Score", "Rating", "Flags")
	for _, rec := range records {
		if err := t.Append(
			rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
			rec.Mode,
			strconv.Itoa(rec.Report.Length),
			FormatNumber(rec.Report.Score),
			string(rec.Report.Rating),
			Flags(rec.Report),
		); err != nil {
			return err
		}
	}
	return t.Render()
}

// Flags lists the IDs of the flags set on r, or "-" when none are.
func Flags(r types.Report) string {
	var f []string
	for _, x := range []struct {
		id  string
		set bool
	}{
		{"dictionary", r.DictionaryMatch},
		{"common", r.CommonPasswordMatch},
		{"repeated", r.RepeatedChars},
		{"sequence", r.SequenceDetected},
		{"keyboard", r.KeyboardPattern},
		{"breached", r.Breached},
	} {
		if x.set {
			f = append(f, x.id)
		}
	}
	if len(f) == 0 {
		return "-"
	}
	return strings.Join(f, ",")
}
