package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"cinecatalog/cards"
	"cinecatalog/httpx"
	"cinecatalog/templates/pages"
	"cinecatalog/tmdb"

	"github.com/labstack/echo/v5"
)

func HomeShow(c *echo.Context) error {
	var props pages.HomeProps
	ctx := c.Request().Context()

	var wg sync.WaitGroup

	wg.Go(func() {
		trending, err := tmdb.API.Trending(ctx)
		if err != nil {
			slog.Error("failed to fetch trending media", "err", err.Error())
			return
		}
		props.Trending = cards.Build(tmdb.API, trending, tmdb.MediaTypeMovie)
	})

	wg.Go(func() {
		upcoming, err := tmdb.API.Upcoming(ctx)
		if err != nil {
			slog.Error("failed to fetch upcoming movies", "err", err.Error())
			return
		}
		props.Upcoming = cards.Build(tmdb.API, upcoming, tmdb.MediaTypeMovie)
	})

	wg.Wait()

	return httpx.Render(c, http.StatusOK, pages.Home(props))
}
