package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"movie-vault/internal/config"
	"movie-vault/internal/metrics"
	"movie-vault/internal/models"
	"movie-vault/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrFolderNotFound reports that the requested scan root does not exist or
// is not a directory.
var ErrFolderNotFound = errors.New("movies folder not found")

// ImportService walks a directory of video files and imports each one as a
// movie row, enriched with OMDB metadata when a match exists.
type ImportService interface {
	ScanLibrary(ctx context.Context, root string) (*models.ImportSummary, error)
}

type importService struct {
	repo        repository.MovieRepository
	omdb        OMDBService
	posters     PosterService
	logger      *logrus.Logger
	parallelism int
	pacingDelay time.Duration
}

// NewImportService wires the import pipeline. posters may be nil, in which
// case poster archiving is disabled.
func NewImportService(repo repository.MovieRepository, omdb OMDBService, posters PosterService, cfg config.ImportConfig, logger *logrus.Logger) ImportService {
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &importService{
		repo:        repo,
		omdb:        omdb,
		posters:     posters,
		logger:      logger,
		parallelism: parallelism,
		pacingDelay: cfg.PacingDelay,
	}
}

type importOutcome int

const (
	outcomeNone importOutcome = iota
	outcomeImported
	outcomeSkippedEmptyTitle
	outcomeSkippedDuplicate
	outcomeSkippedConflict
)

type scanCounters struct {
	scanned  atomic.Int64
	imported atomic.Int64
	skipped  atomic.Int64
	failed   atomic.Int64
}

func (s *importService) ScanLibrary(ctx context.Context, root string) (*models.ImportSummary, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, root)
	}

	scanID := uuid.New().String()[:8]
	log := s.logger.WithFields(logrus.Fields{
		"scan_id": scanID,
		"root":    root,
	})
	log.Info("Starting library scan")

	var (
		wg       sync.WaitGroup
		counters scanCounters
	)
	// At most parallelism files are inside the per-file pipeline at once,
	// which also bounds concurrent OMDB requests.
	sem := make(chan struct{}, s.parallelism)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if IsHiddenName(name) {
			log.WithField("file", name).Debug("Ignoring hidden file")
			metrics.FilesSkipped.WithLabelValues(metrics.SkipReasonHidden).Inc()
			return nil
		}
		if !IsVideoFile(name) {
			return nil
		}

		counters.scanned.Add(1)
		metrics.FilesScanned.Inc()

		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()
			s.importFile(ctx, log, path, &counters)
		}()
		return nil
	})

	wg.Wait()

	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}
	if err := ctx.Err(); err != nil {
		log.Warn("Library scan interrupted")
		return nil, err
	}

	summary := &models.ImportSummary{
		ScanID:   scanID,
		Root:     root,
		Scanned:  int(counters.scanned.Load()),
		Imported: int(counters.imported.Load()),
		Skipped:  int(counters.skipped.Load()),
		Failed:   int(counters.failed.Load()),
	}
	log.WithFields(logrus.Fields{
		"scanned":  summary.Scanned,
		"imported": summary.Imported,
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
	}).Info("Library scan finished")

	return summary, nil
}

// importFile runs the per-file pipeline and folds its outcome into the scan
// counters. A failure here, panics included, only affects this one file.
func (s *importService) importFile(ctx context.Context, log *logrus.Entry, path string, counters *scanCounters) {
	fileLog := log.WithField("file", filepath.Base(path))

	defer func() {
		if r := recover(); r != nil {
			counters.failed.Add(1)
			metrics.ImportFailures.Inc()
			fileLog.Errorf("Panic while importing file: %v", r)
		}
	}()

	outcome, err := s.processFile(ctx, fileLog, path)
	if err != nil {
		counters.failed.Add(1)
		metrics.ImportFailures.Inc()
		fileLog.WithError(err).Error("Failed to import file")
		return
	}

	switch outcome {
	case outcomeImported:
		counters.imported.Add(1)
		metrics.MoviesImported.Inc()
	case outcomeSkippedEmptyTitle:
		counters.skipped.Add(1)
		metrics.FilesSkipped.WithLabelValues(metrics.SkipReasonEmpty).Inc()
	case outcomeSkippedDuplicate:
		counters.skipped.Add(1)
		metrics.FilesSkipped.WithLabelValues(metrics.SkipReasonDuplicate).Inc()
	case outcomeSkippedConflict:
		counters.skipped.Add(1)
		metrics.FilesSkipped.WithLabelValues(metrics.SkipReasonConflict).Inc()
	}
}

func (s *importService) processFile(ctx context.Context, log *logrus.Entry, path string) (importOutcome, error) {
	filename := filepath.Base(path)

	title := CleanTitle(filename)
	if title == "" {
		log.Warn("Nothing left of file name after cleaning, skipping")
		return outcomeSkippedEmptyTitle, nil
	}

	// A matching row without an imdb_id means this exact title was already
	// imported from a file and never enriched; importing again would only
	// duplicate it. Rows with an imdb_id never block a new file.
	existing, err := s.repo.FindByTitleLike(ctx, title)
	if err != nil {
		return outcomeNone, fmt.Errorf("failed to check existing movies: %w", err)
	}
	for i := range existing {
		if existing[i].IMDBID == nil && strings.EqualFold(existing[i].Title, title) {
			log.WithField("title", title).Info("Movie already imported, skipping")
			return outcomeSkippedDuplicate, nil
		}
	}

	meta, err := s.omdb.LookupByTitle(ctx, title, 0)
	if err != nil {
		log.WithError(err).Warn("OMDB lookup failed, importing without metadata")
		meta = nil
	}
	s.pace(ctx)

	movie := BuildMovie(title, filename, meta)
	inserted, err := s.repo.Create(ctx, movie)
	if err != nil {
		return outcomeNone, fmt.Errorf("failed to insert movie: %w", err)
	}
	if !inserted {
		log.WithField("title", movie.Title).Info("Movie already in library, insert ignored")
		return outcomeSkippedConflict, nil
	}

	if meta != nil {
		log.WithFields(logrus.Fields{
			"title":   movie.Title,
			"imdb_id": meta.IMDBID,
		}).Info("Imported movie")
	} else {
		log.WithField("title", movie.Title).Info("Imported movie without metadata")
	}

	s.archivePoster(ctx, log, movie)

	return outcomeImported, nil
}

// pace spreads OMDB requests out so bulk imports stay polite.
func (s *importService) pace(ctx context.Context) {
	if s.pacingDelay <= 0 {
		return
	}
	select {
	case <-time.After(s.pacingDelay):
	case <-ctx.Done():
	}
}

// archivePoster stores a copy of the poster when archiving is enabled. It
// never fails the import.
func (s *importService) archivePoster(ctx context.Context, log *logrus.Entry, movie *models.Movie) {
	if s.posters == nil || movie.IMDBID == nil || movie.PosterURL == nil {
		return
	}
	posterURL := *movie.PosterURL
	if posterURL == "" || posterURL == "N/A" {
		return
	}
	if err := s.posters.Archive(ctx, *movie.IMDBID, posterURL); err != nil {
		log.WithError(err).Warn("Failed to archive poster")
	}
}
