package handlers

import (
	"movie-vault/internal/services"
	"movie-vault/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get movies in the library, optionally filtered by title substring
// @Tags movies
// @Accept json
// @Produce json
// @Param title query string false "Filter by title substring (case-insensitive)"
// @Param limit query int false "Maximum number of movies" default(50)
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	title := c.Query("title", "")
	limit := c.QueryInt("limit", 50)

	movies, err := h.service.GetAllMovies(ctx, title, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.ListMeta{Count: len(movies), Limit: limit}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByIMDBID godoc
// @Summary Get movie by IMDb ID
// @Description Get a single movie by its IMDb ID
// @Tags movies
// @Accept json
// @Produce json
// @Param imdb_id path string true "IMDb ID" example(tt0133093)
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{imdb_id} [get]
func (h *MovieHandler) GetMovieByIMDBID(c *fiber.Ctx) error {
	ctx := c.Context()

	imdbID := c.Params("imdb_id")
	movie, err := h.service.GetMovieByIMDBID(ctx, imdbID)
	if err != nil {
		h.logger.WithError(err).WithField("imdb_id", imdbID).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// RecordWatch godoc
// @Summary Record a watch
// @Description Increment the watch counter of a movie by its IMDb ID
// @Tags movies
// @Accept json
// @Produce json
// @Param imdb_id path string true "IMDb ID" example(tt0133093)
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{imdb_id}/watch [post]
func (h *MovieHandler) RecordWatch(c *fiber.Ctx) error {
	ctx := c.Context()

	imdbID := c.Params("imdb_id")
	movie, err := h.service.RecordWatch(ctx, imdbID)
	if err != nil {
		h.logger.WithError(err).WithField("imdb_id", imdbID).Error("Failed to record watch")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record watch")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watch recorded successfully", movie)
}

// RecordWatchByPath godoc
// @Summary Record a watch by file path
// @Description Increment the watch counter of the movie whose imported file matches the given path
// @Tags movies
// @Accept json
// @Produce json
// @Param path query string true "Path or file name of the played file"
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 400 {object} utils.StandardResponse "Missing path"
// @Failure 404 {object} utils.StandardResponse "No movie matches the path"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/increment-watch [post]
func (h *MovieHandler) RecordWatchByPath(c *fiber.Ctx) error {
	ctx := c.Context()

	path := c.Query("path", "")
	if path == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter 'path' is required")
	}

	movie, err := h.service.RecordWatchByPath(ctx, path)
	if err != nil {
		h.logger.WithError(err).WithField("path", path).Error("Failed to record watch")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record watch")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movie matches the given path")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watch recorded successfully", movie)
}

// SearchOMDB godoc
// @Summary Search OMDB
// @Description Look a title up in OMDB, optionally storing the result in the library
// @Tags search
// @Accept json
// @Produce json
// @Param title query string true "Movie title"
// @Param year query int false "Release year"
// @Param add_to_db query bool false "Store the movie when found" default(false)
// @Success 200 {object} utils.StandardResponse "Movie built from the OMDB answer"
// @Failure 400 {object} utils.StandardResponse "Missing title"
// @Failure 404 {object} utils.StandardResponse "No OMDB match"
// @Failure 500 {object} utils.StandardResponse "Lookup failed"
// @Router /search [get]
func (h *MovieHandler) SearchOMDB(c *fiber.Ctx) error {
	ctx := c.Context()

	title := c.Query("title", "")
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter 'title' is required")
	}
	year := c.QueryInt("year", 0)
	addToDB := c.QueryBool("add_to_db", false)

	movie, added, err := h.service.SearchOMDB(ctx, title, year, addToDB)
	if err != nil {
		h.logger.WithError(err).WithField("title", title).Error("OMDB search failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "OMDB search failed")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found in OMDB")
	}

	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie, fiber.Map{"added": added})
}
