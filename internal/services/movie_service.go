package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"movie-vault/internal/models"
	"movie-vault/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	GetAllMovies(ctx context.Context, title string, limit int) ([]models.Movie, error)
	GetMovieByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error)
	RecordWatch(ctx context.Context, imdbID string) (*models.Movie, error)
	RecordWatchByPath(ctx context.Context, path string) (*models.Movie, error)

	// SearchOMDB looks a title up in OMDB and returns the movie record
	// built from the answer. When addToDB is set the record is stored as
	// well; added reports whether a new row was written.
	SearchOMDB(ctx context.Context, title string, year int, addToDB bool) (movie *models.Movie, added bool, err error)
}

type movieService struct {
	repo   repository.MovieRepository
	omdb   OMDBService
	logger *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, omdb OMDBService, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:   repo,
		omdb:   omdb,
		logger: logger,
	}
}

func (s *movieService) GetAllMovies(ctx context.Context, title string, limit int) ([]models.Movie, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	return s.repo.FindAll(ctx, title, limit)
}

func (s *movieService) GetMovieByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error) {
	if imdbID == "" {
		return nil, fmt.Errorf("imdb_id is required")
	}
	return s.repo.FindByIMDBID(ctx, imdbID)
}

func (s *movieService) RecordWatch(ctx context.Context, imdbID string) (*models.Movie, error) {
	if imdbID == "" {
		return nil, fmt.Errorf("imdb_id is required")
	}

	movie, err := s.repo.IncrementWatchByIMDBID(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if movie != nil {
		s.logger.WithFields(logrus.Fields{
			"imdb_id":     imdbID,
			"watch_count": movie.WatchCount,
		}).Info("Recorded watch")
	}
	return movie, nil
}

// RecordWatchByPath resolves the playing file back to its movie row. Rows
// imported without metadata store their source file name, so matching is on
// the path's base name.
func (s *movieService) RecordWatchByPath(ctx context.Context, path string) (*models.Movie, error) {
	filename := filepath.Base(strings.TrimSpace(path))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("path is required")
	}

	movie, err := s.repo.IncrementWatchByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}
	if movie != nil {
		s.logger.WithFields(logrus.Fields{
			"filename":    filename,
			"watch_count": movie.WatchCount,
		}).Info("Recorded watch")
	}
	return movie, nil
}

func (s *movieService) SearchOMDB(ctx context.Context, title string, year int, addToDB bool) (*models.Movie, bool, error) {
	if strings.TrimSpace(title) == "" {
		return nil, false, fmt.Errorf("title is required")
	}

	meta, err := s.omdb.LookupByTitle(ctx, title, year)
	if err != nil {
		return nil, false, err
	}
	if meta == nil {
		return nil, false, nil
	}

	movie := BuildMovie(title, "", meta)
	if !addToDB {
		return movie, false, nil
	}

	inserted, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, false, fmt.Errorf("failed to store movie: %w", err)
	}
	if inserted {
		s.logger.WithFields(logrus.Fields{
			"title":   movie.Title,
			"imdb_id": meta.IMDBID,
		}).Info("Stored movie from search")
	}
	return movie, inserted, nil
}
