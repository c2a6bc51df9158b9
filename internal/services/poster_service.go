package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"movie-vault/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterService archives poster images into object storage so the library
// keeps a copy even when the upstream URL goes stale.
type PosterService interface {
	Archive(ctx context.Context, imdbID, posterURL string) error
}

type posterService struct {
	client     *minio.Client
	bucket     string
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewPosterService(cfg config.MinIOConfig, logger *logrus.Logger) (PosterService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO poster archive initialized")

	service := &posterService{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return service, nil
}

func (s *posterService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	return nil
}

func (s *posterService) Archive(ctx context.Context, imdbID, posterURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create poster request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectPath := "posters/" + imdbID + posterExtension(posterURL)

	_, err = s.client.PutObject(ctx, s.bucket, objectPath, resp.Body, resp.ContentLength,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to store poster: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"imdb_id":    imdbID,
		"objectPath": objectPath,
	}).Debug("Poster archived")

	return nil
}

func posterExtension(posterURL string) string {
	parsed, err := url.Parse(posterURL)
	if err != nil {
		return ".jpg"
	}
	if ext := filepath.Ext(parsed.Path); ext != "" {
		return ext
	}
	return ".jpg"
}
