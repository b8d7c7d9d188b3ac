package filter

import (
	"strings"
	"testing"

	"github.com/carebridge/formlist/internal/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(titles ...string) []forms.Form {
	out := make([]forms.Form, len(titles))
	for i, title := range titles {
		out[i] = forms.Form{ID: title, Title: title}
	}
	return out
}

func TestRankEmptyTermIsIdentity(t *testing.T) {
	in := rows("Discharge Summary", "Admission Assessment", "Pain Assessment")

	out := Rank(in, "")

	require.Equal(t, in, out)
	// And it must be a copy, not the same backing array.
	out[0].Title = "mutated"
	assert.Equal(t, "Discharge Summary", in[0].Title)
}

func TestRankDropsNonMatches(t *testing.T) {
	in := rows("Discharge Summary", "Wound Care Chart", "Pain Assessment")

	out := Rank(in, "pain")

	require.Len(t, out, 1)
	assert.Equal(t, "Pain Assessment", out[0].Title)
}

func TestRankStrongestFirst(t *testing.T) {
	in := rows("Complete Annual Summary", "CAS Review", "Pain Assessment")

	out := Rank(in, "cas")

	require.NotEmpty(t, out)
	// The contiguous "CAS" hit must outrank the scattered one.
	assert.Equal(t, "CAS Review", out[0].Title)
	for _, f := range out {
		assert.True(t, containsSubsequence(strings.ToLower(f.Title), "cas"),
			"every result must actually match: %q", f.Title)
	}
}

func TestRankNoMatches(t *testing.T) {
	in := rows("Discharge Summary", "Wound Care Chart")

	out := Rank(in, "zzzz")

	assert.Empty(t, out)
}

// containsSubsequence reports whether the characters of needle appear
// in order within haystack.
func containsSubsequence(haystack, needle string) bool {
	i := 0
	for _, r := range haystack {
		if i < len(needle) && r == rune(needle[i]) {
			i++
		}
	}
	return i == len(needle)
}
