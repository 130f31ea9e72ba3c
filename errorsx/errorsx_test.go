package errorsx

import (
	"errors"
	"fmt"
	"testing"

	"cinecatalog/pagination"
	"cinecatalog/tmdb"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(fmt.Errorf("%w: /movie/1", tmdb.ErrNotFound)))
	assert.False(t, IsNotFoundError(&tmdb.APIError{Status: 500, Path: "/movie/1"}))
}

func TestIsNotFoundError_MatchesSentinelOnly(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(errors.New("resource Not Found")))
	assert.False(t, IsNotFoundError(errors.New("template not found")))
}

func TestIsInvalidArgumentError(t *testing.T) {
	_, err := pagination.Window(pagination.State{Current: 0, Total: 1, Size: 5})
	assert.True(t, IsInvalidArgumentError(err))
	assert.False(t, IsInvalidArgumentError(tmdb.ErrNotFound))
}

func TestIsUpstreamAuthError(t *testing.T) {
	assert.True(t, IsUpstreamAuthError(tmdb.ErrUnauthorized))
	assert.True(t, IsUpstreamAuthError(tmdb.ErrMissingKey))
	assert.False(t, IsUpstreamAuthError(tmdb.ErrNotFound))
}
