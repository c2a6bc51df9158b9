package repository

import (
	"context"
	"errors"
	"time"

	"movie-vault/internal/database"
	"movie-vault/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	// Create inserts a movie and reports whether a row was actually written.
	// Inserts that collide on imdb_id are ignored and return false.
	Create(ctx context.Context, movie *models.Movie) (bool, error)
	FindByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error)
	FindByTitleLike(ctx context.Context, title string) ([]models.Movie, error)
	FindAll(ctx context.Context, title string, limit int) ([]models.Movie, error)
	IncrementWatchByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error)
	IncrementWatchByFilename(ctx context.Context, filename string) (*models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "imdb_id"}},
			DoNothing: true,
		}).
		Create(movie)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *movieRepository) FindByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTitleLike(ctx context.Context, title string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+title+"%").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindAll(ctx context.Context, title string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{})
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}

	var movies []models.Movie
	if err := query.Order("title").Limit(limit).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) IncrementWatchByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	result := r.db.WithContext(ctx).
		Model(&movie).
		Clauses(clause.Returning{}).
		Where("imdb_id = ?", imdbID).
		UpdateColumn("watch_count", gorm.Expr("watch_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &movie, nil
}

func (r *movieRepository) IncrementWatchByFilename(ctx context.Context, filename string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	result := r.db.WithContext(ctx).
		Model(&movie).
		Clauses(clause.Returning{}).
		Where("additional_info->>'filename' = ?", filename).
		UpdateColumn("watch_count", gorm.Expr("watch_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &movie, nil
}
