// Package pagination computes which page buttons a pagination bar shows and
// which absolute page each button navigates to.
//
// Every page number a view displays or links to is derived from Offset, so
// what is rendered and what is navigated to cannot drift apart.
package pagination

import (
	"errors"
	"fmt"
)

// DefaultWindowSize is the number of page buttons shown when none is configured.
const DefaultWindowSize = 5

var ErrInvalidArgument = errors.New("invalid argument")

// State is the input of the window computation. Current is 1-indexed.
type State struct {
	Current int
	Total   int
	Size    int
}

func (s State) Validate() error {
	switch {
	case s.Total < 1:
		return fmt.Errorf("%w: total pages %d, must be at least 1", ErrInvalidArgument, s.Total)
	case s.Size < 1:
		return fmt.Errorf("%w: window size %d, must be at least 1", ErrInvalidArgument, s.Size)
	case s.Current < 1:
		return fmt.Errorf("%w: current page %d, must be at least 1", ErrInvalidArgument, s.Current)
	case s.Current > s.Total:
		return fmt.Errorf("%w: current page %d exceeds total pages %d", ErrInvalidArgument, s.Current, s.Total)
	}

	return nil
}

// Len is the number of slots in the window.
func (s State) Len() int {
	return min(s.Size, s.Total)
}

// Offset returns the signed displacement from the current page to the first
// displayed page. The page shown in slot i is Current + i + Offset.
//
// Near the first and last pages the window is pinned to the edge; elsewhere
// the current page sits in the middle slot. For even sizes the extra slot
// goes after the current page.
func Offset(s State) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	first := s.Current - s.Size/2
	last := max(1, s.Total-s.Size+1)

	if first > last {
		first = last
	}
	if first < 1 {
		first = 1
	}

	return first - s.Current, nil
}

// PageAt translates a window slot index into an absolute page number.
func PageAt(s State, slot int) (int, error) {
	offset, err := Offset(s)
	if err != nil {
		return 0, err
	}

	if slot < 0 || slot >= s.Len() {
		return 0, fmt.Errorf("%w: slot %d outside window of %d", ErrInvalidArgument, slot, s.Len())
	}

	return s.Current + slot + offset, nil
}

// Window returns the page numbers to display, in order.
func Window(s State) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pages := make([]int, s.Len())
	for i := range pages {
		page, err := PageAt(s, i)
		if err != nil {
			return nil, err
		}
		pages[i] = page
	}

	return pages, nil
}
