package pagination

import "fmt"

type Action string

const (
	ActionPrev Action = "prev"
	ActionNext Action = "next"
	ActionPage Action = "page"
)

// Navigate returns the absolute page reached by clicking a pagination
// element. slot is only read for ActionPage.
func Navigate(s State, action Action, slot int) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	switch action {
	case ActionPrev:
		return max(1, s.Current-1), nil
	case ActionNext:
		return min(s.Total, s.Current+1), nil
	case ActionPage:
		return PageAt(s, slot)
	default:
		return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, action)
	}
}

// Clamp brings a user supplied page number into [1, total].
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}

	return min(max(page, 1), total)
}

// Page is everything a pagination bar needs to render.
type Page struct {
	State
	Pages   []int
	Prev    int
	Next    int
	HasPrev bool
	HasNext bool
}

func New(current, total, size int) (Page, error) {
	s := State{Current: current, Total: total, Size: size}

	pages, err := Window(s)
	if err != nil {
		return Page{}, err
	}

	prev, _ := Navigate(s, ActionPrev, 0)
	next, _ := Navigate(s, ActionNext, 0)

	return Page{
		State:   s,
		Pages:   pages,
		Prev:    prev,
		Next:    next,
		HasPrev: current > 1,
		HasNext: current < total,
	}, nil
}
