package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"cinecatalog/cards"
	"cinecatalog/httpx"
	"cinecatalog/tmdb"

	"github.com/labstack/echo/v5"
)

const autocompleteMinLength = 2

func AutocompleteSearch(c *echo.Context) error {
	var req struct {
		Query string `query:"q" validate:"max=200"`
	}

	err := httpx.BindAndValidate(c, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": httpx.FormatErrors(err)})
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	if utf8.RuneCountInString(query) < autocompleteMinLength {
		return c.JSON(http.StatusOK, []cards.Suggestion{})
	}

	res, err := tmdb.API.SearchMedia(c.Request().Context(), query, tmdb.SearchOptions{Type: tmdb.MediaTypeMulti})
	if err != nil {
		slog.Error("failed to fetch suggestions", "query", query, "err", err.Error())
		return c.JSON(http.StatusOK, []cards.Suggestion{})
	}

	return c.JSON(http.StatusOK, cards.Suggestions(tmdb.API, res.Results, cards.MaxSuggestions))
}
