package services

import (
	"testing"

	"movie-vault/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildMovieWithoutMetadata(t *testing.T) {
	movie := BuildMovie("Unknown Movie", "Unknown.Movie.mkv", nil)

	require.Equal(t, "Unknown Movie", movie.Title)
	require.Nil(t, movie.Year)
	require.Nil(t, movie.IMDBID)
	require.Nil(t, movie.Rating)
	require.Nil(t, movie.PosterURL)
	require.Equal(t, datatypes.JSONMap{
		"source":   "local file",
		"filename": "Unknown.Movie.mkv",
	}, movie.AdditionalInfo)
}

func TestBuildMovieWithMetadata(t *testing.T) {
	raw := datatypes.JSONMap{
		"Title":    "The Matrix",
		"imdbID":   "tt0133093",
		"Response": "True",
	}
	meta := &models.OMDBMovie{
		Title:      "The Matrix",
		Year:       "1999",
		Runtime:    "136 min",
		Genre:      "Action, Sci-Fi",
		Director:   "Lana Wachowski, Lilly Wachowski",
		Actors:     "Keanu Reeves, Laurence Fishburne",
		Plot:       "A computer hacker learns the truth.",
		Language:   "English",
		Country:    "United States",
		Poster:     "https://example.com/matrix.jpg",
		IMDBRating: "8.7",
		IMDBID:     "tt0133093",
		Response:   "True",
		Raw:        raw,
	}

	movie := BuildMovie("The Matrix 1999", "The.Matrix.1999.mkv", meta)

	require.Equal(t, "The Matrix", movie.Title)
	require.NotNil(t, movie.Year)
	require.Equal(t, 1999, *movie.Year)
	require.NotNil(t, movie.IMDBID)
	require.Equal(t, "tt0133093", *movie.IMDBID)
	require.NotNil(t, movie.Rating)
	require.InDelta(t, 8.7, *movie.Rating, 0.0001)
	require.NotNil(t, movie.PosterURL)
	require.Equal(t, "https://example.com/matrix.jpg", *movie.PosterURL)
	require.NotNil(t, movie.Runtime)
	require.Equal(t, "136 min", *movie.Runtime)
	require.Equal(t, raw, movie.AdditionalInfo)
}

func TestBuildMovieCoercions(t *testing.T) {
	meta := &models.OMDBMovie{
		Title:      "Obscure Picture",
		Year:       "N/A",
		Genre:      "N/A",
		Director:   "",
		IMDBRating: "N/A",
		IMDBID:     "tt0000001",
		Response:   "True",
	}

	movie := BuildMovie("Obscure Picture", "obscure.mkv", meta)

	require.Nil(t, movie.Year)
	require.Nil(t, movie.Rating)
	require.Nil(t, movie.Director)
	require.NotNil(t, movie.Genre)
	require.Equal(t, "N/A", *movie.Genre)
}

func TestBuildMovieRangeYearIsDropped(t *testing.T) {
	meta := &models.OMDBMovie{
		Title:    "Some Series",
		Year:     "2011-2013",
		IMDBID:   "tt0000002",
		Response: "True",
	}

	movie := BuildMovie("Some Series", "series.mkv", meta)

	require.Nil(t, movie.Year)
}

func TestBuildMovieTitleFallback(t *testing.T) {
	meta := &models.OMDBMovie{
		IMDBID:   "tt0000003",
		Response: "True",
	}

	movie := BuildMovie("Fallback Title", "fallback.mkv", meta)

	require.Equal(t, "Fallback Title", movie.Title)
}

func TestParseYear(t *testing.T) {
	year := func(v int) *int { return &v }
	tests := []struct {
		value    string
		expected *int
	}{
		{"2012", year(2012)},
		{"1999", year(1999)},
		{"N/A", nil},
		{"TBA", nil},
		{"2011-2013", nil},
		{"2010–2014", nil},
		{"+2012", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.expected, parseYear(tt.value))
		})
	}
}

func TestParseRating(t *testing.T) {
	rating := func(v float64) *float64 { return &v }
	tests := []struct {
		value    string
		expected *float64
	}{
		{"7.8", rating(7.8)},
		{"8.7", rating(8.7)},
		{"N/A", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.expected, parseRating(tt.value))
		})
	}
}
