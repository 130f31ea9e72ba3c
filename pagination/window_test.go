package pagination_test

import (
	"testing"

	"cinecatalog/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_KnownWindows(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		size    int
		want    []int
	}{
		{"first page", 1, 10, 5, []int{1, 2, 3, 4, 5}},
		{"second page", 2, 10, 5, []int{1, 2, 3, 4, 5}},
		{"third page", 3, 10, 5, []int{1, 2, 3, 4, 5}},
		{"centered", 5, 10, 5, []int{3, 4, 5, 6, 7}},
		{"fourth page", 4, 10, 5, []int{2, 3, 4, 5, 6}},
		{"second to last", 9, 10, 5, []int{6, 7, 8, 9, 10}},
		{"last page", 10, 10, 5, []int{6, 7, 8, 9, 10}},
		{"fewer pages than window", 2, 3, 5, []int{1, 2, 3}},
		{"single page", 1, 1, 5, []int{1}},
		{"window equals total", 4, 5, 5, []int{1, 2, 3, 4, 5}},
		{"window of one", 7, 10, 1, []int{7}},
		{"even window trails current", 5, 10, 4, []int{3, 4, 5, 6}},
		{"two pages window five", 2, 2, 5, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pagination.Window(pagination.State{Current: tt.current, Total: tt.total, Size: tt.size})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow_Properties(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for size := 1; size <= 9; size++ {
			for current := 1; current <= total; current++ {
				s := pagination.State{Current: current, Total: total, Size: size}
				got, err := pagination.Window(s)
				require.NoError(t, err, "state %+v", s)

				require.Len(t, got, min(size, total), "state %+v", s)
				assert.GreaterOrEqual(t, got[0], 1, "state %+v", s)
				assert.LessOrEqual(t, got[len(got)-1], total, "state %+v", s)
				for i := 1; i < len(got); i++ {
					assert.Equal(t, got[i-1]+1, got[i], "state %+v", s)
				}
				assert.Contains(t, got, current, "state %+v", s)

				// pinned at the edges, centered elsewhere
				half := (size + 1) / 2
				switch {
				case total <= size || current <= half:
					assert.Equal(t, 1, got[0], "state %+v", s)
				case current > total-half:
					assert.Equal(t, total, got[len(got)-1], "state %+v", s)
				default:
					assert.Equal(t, current-size/2, got[0], "state %+v", s)
				}
			}
		}
	}
}

func TestWindow_Deterministic(t *testing.T) {
	s := pagination.State{Current: 6, Total: 42, Size: 5}
	first, err := pagination.Window(s)
	require.NoError(t, err)
	second, err := pagination.Window(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWindow_InvalidArgument(t *testing.T) {
	states := []pagination.State{
		{Current: 0, Total: 10, Size: 5},
		{Current: -3, Total: 10, Size: 5},
		{Current: 11, Total: 10, Size: 5},
		{Current: 1, Total: 0, Size: 5},
		{Current: 0, Total: 0, Size: 5},
		{Current: 1, Total: -1, Size: 5},
		{Current: 1, Total: 10, Size: 0},
		{Current: 1, Total: 10, Size: -5},
	}

	for _, s := range states {
		_, err := pagination.Window(s)
		assert.ErrorIs(t, err, pagination.ErrInvalidArgument, "state %+v", s)

		_, err = pagination.Offset(s)
		assert.ErrorIs(t, err, pagination.ErrInvalidArgument, "state %+v", s)

		_, err = pagination.New(s.Current, s.Total, s.Size)
		assert.ErrorIs(t, err, pagination.ErrInvalidArgument, "state %+v", s)
	}
}

func TestPageAt_MatchesWindow(t *testing.T) {
	for total := 1; total <= 15; total++ {
		for current := 1; current <= total; current++ {
			s := pagination.State{Current: current, Total: total, Size: 5}
			window, err := pagination.Window(s)
			require.NoError(t, err)

			offset, err := pagination.Offset(s)
			require.NoError(t, err)

			for slot, want := range window {
				got, err := pagination.PageAt(s, slot)
				require.NoError(t, err)
				assert.Equal(t, want, got)
				assert.Equal(t, want, current+slot+offset)
			}
		}
	}
}

func TestPageAt_SlotOutOfRange(t *testing.T) {
	s := pagination.State{Current: 2, Total: 3, Size: 5}

	_, err := pagination.PageAt(s, -1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)

	_, err = pagination.PageAt(s, 3)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)
}

func TestNavigate(t *testing.T) {
	s := pagination.State{Current: 5, Total: 10, Size: 5}

	page, err := pagination.Navigate(s, pagination.ActionPrev, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, page)

	page, err = pagination.Navigate(s, pagination.ActionNext, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, page)

	page, err = pagination.Navigate(s, pagination.ActionPage, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, page)

	_, err = pagination.Navigate(s, pagination.Action("jump"), 0)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)
}

func TestNavigate_Bounds(t *testing.T) {
	page, err := pagination.Navigate(pagination.State{Current: 1, Total: 10, Size: 5}, pagination.ActionPrev, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	page, err = pagination.Navigate(pagination.State{Current: 10, Total: 10, Size: 5}, pagination.ActionNext, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, page)
}

func TestNavigate_CurrentSlotIsNoop(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for current := 1; current <= total; current++ {
			s := pagination.State{Current: current, Total: total, Size: 5}
			window, err := pagination.Window(s)
			require.NoError(t, err)

			slot := -1
			for i, p := range window {
				if p == current {
					slot = i
				}
			}
			require.NotEqual(t, -1, slot)

			page, err := pagination.Navigate(s, pagination.ActionPage, slot)
			require.NoError(t, err)
			assert.Equal(t, current, page)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, pagination.Clamp(0, 10))
	assert.Equal(t, 1, pagination.Clamp(-4, 10))
	assert.Equal(t, 7, pagination.Clamp(7, 10))
	assert.Equal(t, 10, pagination.Clamp(99, 10))
	assert.Equal(t, 1, pagination.Clamp(3, 0))
}

func TestNew(t *testing.T) {
	p, err := pagination.New(1, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Pages)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, p.Prev)
	assert.Equal(t, 2, p.Next)

	p, err = pagination.New(10, 10, 5)
	require.NoError(t, err)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
	assert.Equal(t, 9, p.Prev)
	assert.Equal(t, 10, p.Next)
}
