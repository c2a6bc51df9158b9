package models

import (
	"time"

	"gorm.io/datatypes"
)

type Movie struct {
	ID             uint              `gorm:"primaryKey" json:"id" example:"1"`
	Title          string            `gorm:"not null;index" json:"title" example:"The Matrix"`
	Year           *int              `json:"year" example:"1999"`
	IMDBID         *string           `gorm:"column:imdb_id;uniqueIndex" json:"imdb_id" example:"tt0133093"`
	Genre          *string           `json:"genre" example:"Action, Sci-Fi"`
	Director       *string           `json:"director" example:"Lana Wachowski, Lilly Wachowski"`
	Actors         *string           `json:"actors" example:"Keanu Reeves, Laurence Fishburne"`
	Plot           *string           `gorm:"type:text" json:"plot" example:"A computer hacker learns the truth..."`
	Language       *string           `json:"language" example:"English"`
	Country        *string           `json:"country" example:"United States"`
	PosterURL      *string           `gorm:"column:poster_url" json:"poster_url" example:"https://m.media-amazon.com/images/matrix.jpg"`
	Rating         *float64          `json:"rating" example:"8.7"`
	Runtime        *string           `json:"runtime" example:"136 min"`
	WatchCount     int               `gorm:"not null;default:0" json:"watch_count" example:"3"`
	LastScraped    time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"last_scraped"`
	AdditionalInfo datatypes.JSONMap `gorm:"type:jsonb" json:"additional_info" swaggertype:"object"`
}

func (Movie) TableName() string {
	return "movies"
}

// OMDBMovie is the payload returned by the OMDB "by title" endpoint. Raw
// carries the undecoded response so the full payload can be stored alongside
// the typed columns.
type OMDBMovie struct {
	Title      string            `json:"Title"`
	Year       string            `json:"Year"`
	Runtime    string            `json:"Runtime"`
	Genre      string            `json:"Genre"`
	Director   string            `json:"Director"`
	Actors     string            `json:"Actors"`
	Plot       string            `json:"Plot"`
	Language   string            `json:"Language"`
	Country    string            `json:"Country"`
	Poster     string            `json:"Poster"`
	IMDBRating string            `json:"imdbRating"`
	IMDBID     string            `json:"imdbID"`
	Type       string            `json:"Type"`
	Response   string            `json:"Response"`
	Error      string            `json:"Error"`
	Raw        datatypes.JSONMap `json:"-"`
}

// ImportSummary reports the outcome of one library scan.
type ImportSummary struct {
	ScanID   string `json:"scan_id" example:"f47ac10b"`
	Root     string `json:"root" example:"/movies"`
	Scanned  int    `json:"scanned" example:"42"`
	Imported int    `json:"imported" example:"17"`
	Skipped  int    `json:"skipped" example:"20"`
	Failed   int    `json:"failed" example:"5"`
}
