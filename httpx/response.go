package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"cinecatalog/errorsx"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v5"
)

func Render(c *echo.Context, statusCode int, t templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(statusCode)
	return t.Render(c.Request().Context(), c.Response())
}

// RenderFragment renders t but writes only the named fragment.
func RenderFragment(c *echo.Context, statusCode int, fragmentName string, t templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(statusCode)
	return templ.RenderFragments(c.Request().Context(), c.Response(), t, fragmentName)
}

func Redirect(c *echo.Context, url string) error {
	if IsHTMX(c) {
		c.Response().Header().Set("HX-Location", url)
		return nil
	}

	return c.Redirect(303, url)
}

func FormatErrors(err error) map[string]string {
	errs := make(map[string]string)

	var rawErrs validator.ValidationErrors
	if !errors.As(err, &rawErrs) {
		if errorsx.IsNotFoundError(err) {
			errs["_Error"] = MsgErrNotFound
		} else if errorsx.IsInvalidArgumentError(err) {
			errs["_Error"] = MsgErrBadRequest
		} else if errorsx.IsUpstreamAuthError(err) {
			slog.Error(err.Error())
			errs["_Error"] = MsgErrUnavailable
		} else {
			slog.Error(err.Error())
			errs["_Error"] = MsgErrGeneric
		}
		return errs
	}

	for _, err := range rawErrs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			errs[field] = MsgErrRequired
		case "min":
			if err.Kind() == reflect.String {
				errs[field] = fmt.Sprintf(MsgErrTooShort, err.Param())
			} else {
				errs[field] = fmt.Sprintf(MsgErrTooSmall, err.Param())
			}
		case "max":
			if err.Kind() == reflect.String {
				errs[field] = fmt.Sprintf(MsgErrTooLong, err.Param())
			} else {
				errs[field] = fmt.Sprintf(MsgErrTooLarge, err.Param())
			}
		default:
			errs[field] = MsgErrInvalid
		}
	}

	return errs
}
