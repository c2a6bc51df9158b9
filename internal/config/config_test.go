package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_NAME", "OMDB_APIKEY", "OMDB_BASE_URL",
		"MOVIES_DIR", "IMPORT_PARALLELISM", "IMPORT_PACING_DELAY", "MINIO_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "8000", cfg.Server.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "movie_vault", cfg.Database.DBName)
	require.Empty(t, cfg.OMDB.APIKey)
	require.Equal(t, "http://www.omdbapi.com/", cfg.OMDB.BaseURL)
	require.Equal(t, 10*time.Second, cfg.OMDB.HTTPTimeout)
	require.Equal(t, "/movies", cfg.Import.MoviesDir)
	require.Equal(t, 3, cfg.Import.Parallelism)
	require.Equal(t, 200*time.Millisecond, cfg.Import.PacingDelay)
	require.False(t, cfg.MinIO.Enabled)
	require.Equal(t, "posters", cfg.MinIO.BucketName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_NAME", "library")
	t.Setenv("OMDB_APIKEY", "secret")
	t.Setenv("OMDB_HTTP_TIMEOUT", "3s")
	t.Setenv("MOVIES_DIR", "/data/movies")
	t.Setenv("IMPORT_PARALLELISM", "5")
	t.Setenv("IMPORT_PACING_DELAY", "150ms")
	t.Setenv("MINIO_ENABLED", "true")
	t.Setenv("MINIO_ACCESS_KEY", "access")
	t.Setenv("MINIO_SECRET_KEY", "secret")

	cfg := Load()

	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, "library", cfg.Database.DBName)
	require.Equal(t, "secret", cfg.OMDB.APIKey)
	require.Equal(t, 3*time.Second, cfg.OMDB.HTTPTimeout)
	require.Equal(t, "/data/movies", cfg.Import.MoviesDir)
	require.Equal(t, 5, cfg.Import.Parallelism)
	require.Equal(t, 150*time.Millisecond, cfg.Import.PacingDelay)
	require.True(t, cfg.MinIO.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("IMPORT_PARALLELISM", "many")
	t.Setenv("IMPORT_PACING_DELAY", "soon")
	t.Setenv("MINIO_ENABLED", "maybe")

	cfg := Load()

	require.Equal(t, 3, cfg.Import.Parallelism)
	require.Equal(t, 200*time.Millisecond, cfg.Import.PacingDelay)
	require.False(t, cfg.MinIO.Enabled)
}

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Host: "localhost"},
		OMDB:     OMDBConfig{APIKey: "secret"},
		Import:   ImportConfig{Parallelism: 3},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.OMDB.APIKey = ""
	require.ErrorContains(t, cfg.Validate(), "OMDB_APIKEY")

	cfg = validConfig()
	cfg.Database.Host = ""
	require.ErrorContains(t, cfg.Validate(), "DB_HOST")

	cfg = validConfig()
	cfg.Import.Parallelism = 0
	require.ErrorContains(t, cfg.Validate(), "IMPORT_PARALLELISM")

	cfg = validConfig()
	cfg.MinIO.Enabled = true
	require.ErrorContains(t, cfg.Validate(), "MINIO_ACCESS_KEY")

	cfg = validConfig()
	cfg.MinIO.Enabled = true
	cfg.MinIO.AccessKeyID = "access"
	require.ErrorContains(t, cfg.Validate(), "MINIO_SECRET_KEY")
}
