package utils

import (
	"context"
)

type navigationKey struct{}

// Navigation is the query string state shared by every page: the search box
// is prefilled from it.
type Navigation struct {
	Search string
	Type   string
}

func WithNavigation(ctx context.Context, nav *Navigation) context.Context {
	return context.WithValue(ctx, navigationKey{}, nav)
}

func GetNavigation(ctx context.Context) *Navigation {
	nav, ok := ctx.Value(navigationKey{}).(*Navigation)
	if !ok {
		return &Navigation{}
	}

	return nav
}
