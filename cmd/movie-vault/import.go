package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"movie-vault/internal/config"
	"movie-vault/internal/database"
	"movie-vault/internal/repository"
	"movie-vault/internal/services"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Scan a directory and import movie files into the library",
		Long: `Scan a directory tree for video files and import each one as a movie,
enriched with OMDB metadata when a match exists. Without a path argument the
configured movies directory (MOVIES_DIR) is scanned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runImport(path)
		},
	}
}

// acquireImportLock takes the file lock that keeps imports single-instance;
// concurrent scans would race on the duplicate check. The returned release
// must be called once the scan is done.
func acquireImportLock(path string) (release func() error, err error) {
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire import lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another import is already running (lock %s)", path)
	}
	return lock.Unlock, nil
}

func runImport(path string) error {
	loadEnvFile()
	cfg := config.Load()
	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}
	if path == "" {
		path = cfg.Import.MoviesDir
	}

	release, err := acquireImportLock(cfg.Import.LockFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			log.Errorf("Error releasing import lock: %v", err)
		}
	}()

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	movieRepo := repository.NewMovieRepository(db)
	omdbService := services.NewOMDBService(cfg.OMDB, log)

	var posterService services.PosterService
	if cfg.MinIO.Enabled {
		posterService, err = services.NewPosterService(cfg.MinIO, log)
		if err != nil {
			return fmt.Errorf("failed to initialize poster archive: %w", err)
		}
	}
	importService := services.NewImportService(movieRepo, omdbService, posterService, cfg.Import, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := importService.ScanLibrary(ctx, path)
	if err != nil {
		return fmt.Errorf("library scan failed: %w", err)
	}

	fmt.Println(renderTable([]tableColumn{
		{title: "Scanned", right: true},
		{title: "Imported", right: true},
		{title: "Skipped", right: true},
		{title: "Failed", right: true},
	}, [][]string{{
		strconv.Itoa(summary.Scanned),
		strconv.Itoa(summary.Imported),
		strconv.Itoa(summary.Skipped),
		strconv.Itoa(summary.Failed),
	}}))

	return nil
}
