package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-vault/internal/handlers"
	"movie-vault/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type routedMovieService struct {
	calls []string
}

func (s *routedMovieService) GetAllMovies(context.Context, string, int) ([]models.Movie, error) {
	s.calls = append(s.calls, "list")
	return nil, nil
}

func (s *routedMovieService) GetMovieByIMDBID(_ context.Context, imdbID string) (*models.Movie, error) {
	s.calls = append(s.calls, "get "+imdbID)
	return &models.Movie{Title: "The Matrix"}, nil
}

func (s *routedMovieService) RecordWatch(_ context.Context, imdbID string) (*models.Movie, error) {
	s.calls = append(s.calls, "watch "+imdbID)
	return &models.Movie{Title: "The Matrix", WatchCount: 1}, nil
}

func (s *routedMovieService) RecordWatchByPath(_ context.Context, path string) (*models.Movie, error) {
	s.calls = append(s.calls, "watch-by-path "+path)
	return &models.Movie{Title: "Unknown Movie", WatchCount: 1}, nil
}

func (s *routedMovieService) SearchOMDB(_ context.Context, title string, _ int, _ bool) (*models.Movie, bool, error) {
	s.calls = append(s.calls, "search "+title)
	return &models.Movie{Title: title}, false, nil
}

type routedImportService struct {
	calls []string
}

func (s *routedImportService) ScanLibrary(_ context.Context, root string) (*models.ImportSummary, error) {
	s.calls = append(s.calls, "scan "+root)
	return &models.ImportSummary{Root: root}, nil
}

func TestSetupDispatchesToHandlers(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	movieSvc := &routedMovieService{}
	importSvc := &routedImportService{}

	app := fiber.New()
	Setup(app,
		handlers.NewMovieHandler(movieSvc, logger),
		handlers.NewImportHandler(importSvc, "/movies", logger),
	)

	requests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/movies"},
		{http.MethodGet, "/api/v1/movies/tt0133093"},
		{http.MethodPost, "/api/v1/movies/tt0133093/watch"},
		{http.MethodPost, "/api/v1/movies/increment-watch?path=a.mkv"},
		{http.MethodGet, "/api/v1/search?title=Heat"},
		{http.MethodPost, "/api/v1/import/local"},
	}
	for _, r := range requests {
		resp, err := app.Test(httptest.NewRequest(r.method, r.target, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "%s %s", r.method, r.target)
	}

	require.Equal(t, []string{
		"list",
		"get tt0133093",
		"watch tt0133093",
		"watch-by-path a.mkv",
		"search Heat",
	}, movieSvc.calls)
	require.Equal(t, []string{"scan /movies"}, importSvc.calls)
}

func TestSetupUnknownRoute(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	Setup(app,
		handlers.NewMovieHandler(&routedMovieService{}, logger),
		handlers.NewImportHandler(&routedImportService{}, "/movies", logger),
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/unknown/route", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
