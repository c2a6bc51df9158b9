package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OMDB     OMDBConfig
	Import   ImportConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type OMDBConfig struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
}

type ImportConfig struct {
	MoviesDir   string
	Parallelism int
	PacingDelay time.Duration
	LockFile    string
}

type MinIOConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "movie_vault"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		OMDB: OMDBConfig{
			APIKey:      os.Getenv("OMDB_APIKEY"),
			BaseURL:     getEnvOrDefault("OMDB_BASE_URL", "http://www.omdbapi.com/"),
			HTTPTimeout: getDurationOrDefault("OMDB_HTTP_TIMEOUT", 10*time.Second),
		},
		Import: ImportConfig{
			MoviesDir:   getEnvOrDefault("MOVIES_DIR", "/movies"),
			Parallelism: getIntOrDefault("IMPORT_PARALLELISM", 3),
			PacingDelay: getDurationOrDefault("IMPORT_PACING_DELAY", 200*time.Millisecond),
			LockFile:    getEnvOrDefault("IMPORT_LOCK_FILE", "/tmp/movie-vault-import.lock"),
		},
		MinIO: MinIOConfig{
			Enabled:         getBoolOrDefault("MINIO_ENABLED", false),
			Endpoint:        getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("MINIO_ACCESS_KEY", ""),
			SecretAccessKey: getEnvOrDefault("MINIO_SECRET_KEY", ""),
			BucketName:      getEnvOrDefault("MINIO_BUCKET", "posters"),
			Region:          getEnvOrDefault("MINIO_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("MINIO_USE_SSL", false),
		},
	}
}

func (c *Config) Validate() error {
	if c.OMDB.APIKey == "" {
		return fmt.Errorf("OMDB_APIKEY is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Import.Parallelism < 1 {
		return fmt.Errorf("IMPORT_PARALLELISM must be at least 1")
	}
	if c.MinIO.Enabled {
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY is required when MinIO is enabled")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("MINIO_SECRET_KEY is required when MinIO is enabled")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
