package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"list", "list", 0},
		{"lsit", "list", 2},
		{"kitten", "sitting", 3},
		{"città", "citta", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.expected, levenshtein(tt.a, tt.b))
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"appmodule", "column", "relationship", "settings", "solution"}

	require.Equal(t, []string{"column"}, suggest("colum", candidates))
	require.Equal(t, []string{"settings", "solution"}, suggest("s", candidates))
	require.Equal(t, []string{"solution"}, suggest("solutoin", candidates))
	require.Nil(t, suggest("zzz", candidates))
	require.Nil(t, suggest("", candidates))
}
