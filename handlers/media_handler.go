package handlers

import (
	"log/slog"
	"net/http"

	"cinecatalog/cards"
	"cinecatalog/config"
	"cinecatalog/errorsx"
	"cinecatalog/httpx"
	"cinecatalog/templates/pages"
	"cinecatalog/templates/pages/base"
	"cinecatalog/tmdb"

	"github.com/labstack/echo/v5"
)

func MediaShow(c *echo.Context) error {
	var req struct {
		ID   int    `query:"id" validate:"required,min=1"`
		Type string `query:"type" validate:"required,mediatype"`
	}

	err := httpx.BindAndValidate(c, &req)
	if err != nil {
		slog.Debug("invalid media request", "err", err.Error())
		return httpx.Render(c, http.StatusBadRequest, base.Message("Not found", httpx.MsgNoResults))
	}

	ctx := c.Request().Context()

	media, err := tmdb.API.GetMedia(ctx, tmdb.MediaType(req.Type), req.ID)
	if err != nil {
		if errorsx.IsNotFoundError(err) {
			return httpx.Render(c, http.StatusNotFound, base.Message("Not found", httpx.MsgNoResults))
		}

		slog.Error("failed to fetch media", "id", req.ID, "type", req.Type, "err", err.Error())
		return httpx.Render(c, http.StatusBadGateway, base.Message("Unavailable", httpx.MsgNoResults))
	}

	var portraits map[int]string
	if media.Credits != nil {
		portraits = tmdb.API.CastPortraits(ctx, media.Credits.Cast, config.Config.CastLimit)
	}

	return httpx.Render(c, http.StatusOK, pages.Media(pages.MediaProps{
		Media:     media,
		Poster:    tmdb.API.ImageURL(media.PosterPath, tmdb.ImageSizeW400),
		Backdrop:  tmdb.API.ImageURL(media.BackdropPath, tmdb.ImageSizeOriginal),
		Portraits: portraits,
		CastLimit: config.Config.CastLimit,
	}))
}

// MovieRedirect keeps old movie-only links working.
func MovieRedirect(c *echo.Context) error {
	var req struct {
		ID int `query:"id" validate:"required,min=1"`
	}

	err := httpx.BindAndValidate(c, &req)
	if err != nil {
		return httpx.Render(c, http.StatusBadRequest, base.Message("Not found", httpx.MsgNoResults))
	}

	return c.Redirect(http.StatusMovedPermanently, cards.MediaHref(tmdb.MediaTypeMovie, req.ID))
}
