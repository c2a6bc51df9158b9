package services

import (
	"strconv"
	"strings"

	"movie-vault/internal/models"

	"gorm.io/datatypes"
)

// BuildMovie assembles the database row for one library file. With metadata
// the row carries OMDB's fields plus the raw payload; without it the row is
// a minimal title-only record marked as coming from a local file.
func BuildMovie(title, filename string, meta *models.OMDBMovie) *models.Movie {
	if meta == nil {
		return &models.Movie{
			Title: title,
			AdditionalInfo: datatypes.JSONMap{
				"source":   "local file",
				"filename": filename,
			},
		}
	}

	recordTitle := meta.Title
	if recordTitle == "" {
		recordTitle = title
	}

	return &models.Movie{
		Title:          recordTitle,
		Year:           parseYear(meta.Year),
		IMDBID:         optionalString(meta.IMDBID),
		Genre:          optionalString(meta.Genre),
		Director:       optionalString(meta.Director),
		Actors:         optionalString(meta.Actors),
		Plot:           optionalString(meta.Plot),
		Language:       optionalString(meta.Language),
		Country:        optionalString(meta.Country),
		PosterURL:      optionalString(meta.Poster),
		Rating:         parseRating(meta.IMDBRating),
		Runtime:        optionalString(meta.Runtime),
		AdditionalInfo: meta.Raw,
	}
}

// parseYear accepts all-digit years only. OMDB ranges like "2011-2013" and
// placeholders like "N/A" or "TBA" come back as null.
func parseYear(value string) *int {
	for _, r := range value {
		if r < '0' || r > '9' {
			return nil
		}
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &year
}

// parseRating turns OMDB's imdbRating string into a float, treating "N/A"
// and anything else unparsable as null.
func parseRating(value string) *float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &rating
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
