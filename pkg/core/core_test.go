package core

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_InvalidRate(t *testing.T) {
	_, err := Analyze("x", Config{GuessesPerSecond: -1})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestMarshalRoundTrip(t *testing.T) {
	a, err := New(Config{})
	require.NoError(t, err)
	reports, err := AnalyzeAll(context.Background(), a, []string{"hello", "aaaaaaaa"}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString("[")
	require.NoError(t, MarshalReport(&buf, reports[0]))
	buf.WriteString(",")
	require.NoError(t, MarshalReport(&buf, reports[1]))
	buf.WriteString("]")
	raw := buf.String()
	assert.NotContains(t, raw, "hello")

	back, err := UnmarshalReports(&buf)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, reports[0].Rating, back[0].Rating)
	assert.True(t, back[1].RepeatedChars)
}

func TestLoadWordlist_Missing(t *testing.T) {
	assert.Zero(t, LoadWordlist("/nonexistent/list.txt").Len())
}
