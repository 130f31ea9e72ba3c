package errorsx

import (
	"errors"

	"cinecatalog/pagination"
	"cinecatalog/tmdb"
)

func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, tmdb.ErrNotFound)
}

func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, pagination.ErrInvalidArgument)
}

func IsUpstreamAuthError(err error) bool {
	return errors.Is(err, tmdb.ErrUnauthorized) || errors.Is(err, tmdb.ErrMissingKey)
}
