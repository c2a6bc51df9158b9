package routes

import (
	"movie-vault/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, importHandler *handlers.ImportHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes. The static increment-watch route stays registered before
	// the :imdb_id routes.
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Post("/increment-watch", movieHandler.RecordWatchByPath)
		movies.Get("/:imdb_id", movieHandler.GetMovieByIMDBID)
		movies.Post("/:imdb_id/watch", movieHandler.RecordWatch)
	}

	// OMDB search
	v1.Get("/search", movieHandler.SearchOMDB)

	// Local library import
	imports := v1.Group("/import")
	{
		imports.Post("/local", importHandler.ImportLocal)
	}
}
