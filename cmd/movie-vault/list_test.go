package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatYear(t *testing.T) {
	year := 1999
	require.Equal(t, "1999", formatYear(&year))
	require.Empty(t, formatYear(nil))
}

func TestFormatString(t *testing.T) {
	id := "tt0133093"
	require.Equal(t, "tt0133093", formatString(&id))
	require.Empty(t, formatString(nil))
}

func TestFormatRating(t *testing.T) {
	rating := 8.7
	require.Equal(t, "8.7", formatRating(&rating))

	whole := 7.0
	require.Equal(t, "7.0", formatRating(&whole))

	require.Empty(t, formatRating(nil))
}
