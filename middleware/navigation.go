package middleware

import (
	"strings"

	"cinecatalog/templates/utils"

	"github.com/labstack/echo/v5"
)

// WithNavigation exposes the search query string to templates through the
// request context, so the layout can prefill the search box.
func WithNavigation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		nav := &utils.Navigation{
			Search: strings.TrimSpace(c.QueryParam("search")),
			Type:   c.QueryParam("type"),
		}

		ctx := utils.WithNavigation(c.Request().Context(), nav)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
