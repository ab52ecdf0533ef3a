package report

import (
	"fmt"
	"strings"

	"github.com/varalys/passcheck/internal/types"
)

// ParseRating accepts a rating label in any case, with spaces, dashes or
// underscores ("very-weak", "Very Weak").
func ParseRating(s string) (types.Rating, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range types.Ratings {
		if strings.ToLower(string(r)) == norm {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rating %q (want one of: very-weak, weak, moderate, strong, excellent)", s)
}

// ShouldFail reports whether r is rated below threshold. An empty threshold
// never fails.
func ShouldFail(r types.Report, threshold types.Rating) bool {
	if threshold == "" {
		return false
	}
	return r.Rating.Rank() < threshold.Rank()
}
