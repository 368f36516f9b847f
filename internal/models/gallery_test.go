package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryRank(t *testing.T) {
	cases := []struct {
		name     string
		fileType string
		want     int
	}{
		{"first category", "Birthday Decor", 0},
		{"last category", "Cake Corner", 8},
		{"case-insensitive", "wedding decor", 7},
		{"mixed case", "HALDI & MEHNDI", 3},
		{"surrounding whitespace", "  Gift Packing  ", 4},
		{"unknown ranks after known", "Corporate Events", len(FileTypes)},
		{"substring is not a match", "Decor", len(FileTypes)},
		{"empty", "", len(FileTypes)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CategoryRank(tc.fileType))
		})
	}
}

func TestKnownFileType(t *testing.T) {
	require.True(t, KnownFileType("ring ceremony platter"))
	require.False(t, KnownFileType("Office Party"))
}

func TestTaxonomyHasNineLabels(t *testing.T) {
	require.Len(t, FileTypes, 9)
}
