package app

import (
	"cinecatalog/handlers"

	"github.com/labstack/echo/v5"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handlers.HomeShow)

	e.GET("/search", handlers.SearchShow)
	e.GET("/search/navigate", handlers.SearchNavigate)

	e.GET("/media", handlers.MediaShow)
	e.GET("/movie", handlers.MovieRedirect)

	api := e.Group("/api")
	api.GET("/autocomplete", handlers.AutocompleteSearch)
}
