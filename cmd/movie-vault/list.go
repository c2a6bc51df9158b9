package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"movie-vault/internal/config"
	"movie-vault/internal/database"
	"movie-vault/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var titleFlag string
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(titleFlag, limitFlag)
		},
	}
	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Filter by title substring")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 100, "Maximum number of movies")

	return cmd
}

func runList(title string, limit int) error {
	loadEnvFile()
	cfg := config.Load()
	log := setupLogger()
	// Keep the table output clean.
	log.SetLevel(logrus.WarnLevel)

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	movies, err := movieRepo.FindAll(ctx, title, limit)
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}
	if len(movies) == 0 {
		fmt.Println("No movies found")
		return nil
	}

	rows := make([][]string, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		rows = append(rows, []string{
			m.Title,
			formatYear(m.Year),
			formatString(m.IMDBID),
			formatRating(m.Rating),
			strconv.Itoa(m.WatchCount),
		})
	}

	fmt.Println(renderTable([]tableColumn{
		{title: "Title"},
		{title: "Year", right: true},
		{title: "IMDb ID"},
		{title: "Rating", right: true},
		{title: "Watches", right: true},
	}, rows))

	return nil
}

func formatYear(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatRating(rating *float64) string {
	if rating == nil {
		return ""
	}
	return strconv.FormatFloat(*rating, 'f', 1, 64)
}
