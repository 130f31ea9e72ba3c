package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"cinecatalog/cards"
	"cinecatalog/config"
	"cinecatalog/httpx"
	"cinecatalog/pagination"
	"cinecatalog/templates/pages"
	"cinecatalog/templates/pages/base"
	"cinecatalog/templates/utils"
	"cinecatalog/tmdb"

	"github.com/labstack/echo/v5"
)

func SearchShow(c *echo.Context) error {
	var req struct {
		Search string `query:"search" validate:"max=200"`
		Page   int    `query:"page"`
		Type   string `query:"type" validate:"omitempty,oneof=multi movie tv"`
	}

	err := httpx.BindAndValidate(c, &req)
	if err != nil {
		slog.Debug("invalid search request", "err", err.Error())
		return httpx.Render(c, http.StatusBadRequest, base.Error(httpx.MsgErrBadRequest))
	}

	props := pages.SearchProps{
		Search: strings.TrimSpace(req.Search),
		Type:   req.Type,
	}
	if props.Search == "" {
		return renderSearch(c, http.StatusOK, props)
	}

	page := pagination.Clamp(req.Page, config.Config.SearchMaxPage)
	mediaType := tmdb.MediaType(req.Type)

	res, err := tmdb.API.SearchMedia(c.Request().Context(), props.Search, tmdb.SearchOptions{
		Type: mediaType,
		Page: page,
	})
	if err != nil {
		slog.Error("failed to search media", "search", props.Search, "page", page, "err", err.Error())
		return renderSearch(c, http.StatusOK, props)
	}

	total := min(res.TotalPages, config.Config.SearchMaxPage)
	if total < 1 {
		return renderSearch(c, http.StatusOK, props)
	}
	if page > total {
		return httpx.Redirect(c, utils.SearchURL(props.Search, props.Type, total))
	}

	p, err := pagination.New(page, total, config.Config.PaginationWindow)
	if err != nil {
		slog.Error("failed to build pagination", "page", page, "total", total, "err", err.Error())
		return httpx.Render(c, http.StatusInternalServerError, base.Error(httpx.FormatErrors(err)["_Error"]))
	}

	props.TotalResults = res.TotalResults
	props.Cards = cards.Build(tmdb.API, res.Results, tmdb.MediaTypeMovie)
	props.Page = &p

	return renderSearch(c, http.StatusOK, props)
}

func renderSearch(c *echo.Context, statusCode int, props pages.SearchProps) error {
	if httpx.IsHTMX(c) {
		return httpx.RenderFragment(c, statusCode, pages.SearchResultsFragment, pages.Search(props))
	}

	return httpx.Render(c, statusCode, pages.Search(props))
}

// SearchNavigate resolves a clicked pagination element (prev, next or a
// window slot) to an absolute page and redirects to it.
func SearchNavigate(c *echo.Context) error {
	var req struct {
		Search string `query:"search" validate:"max=200"`
		Type   string `query:"type" validate:"omitempty,oneof=multi movie tv"`
		Page   int    `query:"page"`
		Total  int    `query:"total" validate:"min=1"`
		Action string `query:"action" validate:"required,oneof=prev next page"`
		Slot   int    `query:"slot"`
	}

	err := httpx.BindAndValidate(c, &req)
	if err != nil {
		slog.Debug("invalid navigation request", "err", err.Error())
		return httpx.Render(c, http.StatusBadRequest, base.Error(httpx.MsgErrBadRequest))
	}

	total := min(req.Total, config.Config.SearchMaxPage)
	state := pagination.State{
		Current: pagination.Clamp(req.Page, total),
		Total:   total,
		Size:    config.Config.PaginationWindow,
	}

	target, err := pagination.Navigate(state, pagination.Action(req.Action), req.Slot)
	if err != nil {
		slog.Debug("failed to navigate", "state", state, "action", req.Action, "slot", req.Slot, "err", err.Error())
		return httpx.Render(c, http.StatusBadRequest, base.Error(httpx.FormatErrors(err)["_Error"]))
	}

	return httpx.Redirect(c, utils.SearchURL(strings.TrimSpace(req.Search), req.Type, target))
}
