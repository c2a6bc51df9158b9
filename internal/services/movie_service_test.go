package services

import (
	"context"
	"testing"
	"time"

	"movie-vault/internal/config"
	"movie-vault/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newTestMovieService(repo *fakeMovieRepo, baseURL string) MovieService {
	omdb := NewOMDBService(config.OMDBConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		HTTPTimeout: 5 * time.Second,
	}, newTestLogger())
	return NewMovieService(repo, omdb, newTestLogger())
}

func TestGetAllMoviesClampsLimit(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.seed(models.Movie{Title: "Alpha"})
	repo.seed(models.Movie{Title: "Beta"})
	service := newTestMovieService(repo, "http://localhost:0")

	movies, err := service.GetAllMovies(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	require.Equal(t, 50, repo.lastLimit)

	_, err = service.GetAllMovies(context.Background(), "", 9999)
	require.NoError(t, err)
	require.Equal(t, 500, repo.lastLimit)

	_, err = service.GetAllMovies(context.Background(), "", 25)
	require.NoError(t, err)
	require.Equal(t, 25, repo.lastLimit)
}

func TestGetAllMoviesFiltersByTitle(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.seed(models.Movie{Title: "The Matrix"})
	repo.seed(models.Movie{Title: "Inception"})
	service := newTestMovieService(repo, "http://localhost:0")

	movies, err := service.GetAllMovies(context.Background(), "matrix", 10)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "The Matrix", movies[0].Title)
}

func TestGetMovieByIMDBID(t *testing.T) {
	imdbID := "tt0133093"
	repo := newFakeMovieRepo()
	repo.seed(models.Movie{Title: "The Matrix", IMDBID: &imdbID})
	service := newTestMovieService(repo, "http://localhost:0")

	movie, err := service.GetMovieByIMDBID(context.Background(), "tt0133093")
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.Equal(t, "The Matrix", movie.Title)

	movie, err = service.GetMovieByIMDBID(context.Background(), "tt9999999")
	require.NoError(t, err)
	require.Nil(t, movie)

	_, err = service.GetMovieByIMDBID(context.Background(), "")
	require.Error(t, err)
}

func TestRecordWatchIncrements(t *testing.T) {
	imdbID := "tt0133093"
	repo := newFakeMovieRepo()
	repo.seed(models.Movie{Title: "The Matrix", IMDBID: &imdbID})
	service := newTestMovieService(repo, "http://localhost:0")

	movie, err := service.RecordWatch(context.Background(), "tt0133093")
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.Equal(t, 1, movie.WatchCount)

	movie, err = service.RecordWatch(context.Background(), "tt0133093")
	require.NoError(t, err)
	require.Equal(t, 2, movie.WatchCount)

	movie, err = service.RecordWatch(context.Background(), "tt9999999")
	require.NoError(t, err)
	require.Nil(t, movie)
}

func TestRecordWatchByPathMatchesBaseName(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.seed(models.Movie{
		Title: "Unknown Movie",
		AdditionalInfo: datatypes.JSONMap{
			"source":   "local file",
			"filename": "Unknown.Movie.mkv",
		},
	})
	service := newTestMovieService(repo, "http://localhost:0")

	movie, err := service.RecordWatchByPath(context.Background(), "/library/sub/Unknown.Movie.mkv")
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.Equal(t, 1, movie.WatchCount)

	movie, err = service.RecordWatchByPath(context.Background(), "Unknown.Movie.mkv")
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.Equal(t, 2, movie.WatchCount)

	movie, err = service.RecordWatchByPath(context.Background(), "/library/other.mkv")
	require.NoError(t, err)
	require.Nil(t, movie)

	_, err = service.RecordWatchByPath(context.Background(), "  ")
	require.Error(t, err)
}

func TestSearchOMDBStoresWhenRequested(t *testing.T) {
	server, _ := newOMDBServer(t, map[string]map[string]any{
		"The Matrix": matrixPayload(),
	})
	repo := newFakeMovieRepo()
	service := newTestMovieService(repo, server.URL)

	movie, added, err := service.SearchOMDB(context.Background(), "The Matrix", 0, true)
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.True(t, added)
	require.Equal(t, "The Matrix", movie.Title)
	require.NotNil(t, movie.IMDBID)
	require.Equal(t, "tt0133093", *movie.IMDBID)
	require.Equal(t, 1, repo.count())

	movie, added, err = service.SearchOMDB(context.Background(), "The Matrix", 0, true)
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.False(t, added)
	require.Equal(t, 1, repo.count())
}

func TestSearchOMDBWithoutStore(t *testing.T) {
	server, _ := newOMDBServer(t, map[string]map[string]any{
		"The Matrix": matrixPayload(),
	})
	repo := newFakeMovieRepo()
	service := newTestMovieService(repo, server.URL)

	movie, added, err := service.SearchOMDB(context.Background(), "The Matrix", 0, false)
	require.NoError(t, err)
	require.NotNil(t, movie)
	require.False(t, added)
	require.NotNil(t, movie.Year)
	require.Equal(t, 1999, *movie.Year)
	require.NotNil(t, movie.Rating)
	require.Equal(t, 8.7, *movie.Rating)
	require.Equal(t, 0, repo.count())
}

func TestSearchOMDBMiss(t *testing.T) {
	server, _ := newOMDBServer(t, nil)
	repo := newFakeMovieRepo()
	service := newTestMovieService(repo, server.URL)

	movie, added, err := service.SearchOMDB(context.Background(), "No Such Movie", 0, true)
	require.NoError(t, err)
	require.Nil(t, movie)
	require.False(t, added)
	require.Equal(t, 0, repo.count())
}

func TestSearchOMDBRequiresTitle(t *testing.T) {
	repo := newFakeMovieRepo()
	service := newTestMovieService(repo, "http://localhost:0")

	_, _, err := service.SearchOMDB(context.Background(), "   ", 0, false)
	require.Error(t, err)
}
