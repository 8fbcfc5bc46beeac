package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagedResult(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}

	got := NewPagedResult(items, 10, 2, 3)

	require.Equal(t, items, got.Items)
	require.EqualValues(t, 10, got.TotalCount)
	require.EqualValues(t, 2, got.Page)
	require.EqualValues(t, 3, got.Size)
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	got := NewPagedResult([]int{}, 25, 1, 10)
	require.EqualValues(t, 3, got.TotalPages())

	got = NewPagedResult([]int{}, 30, 1, 10)
	require.EqualValues(t, 3, got.TotalPages())

	got = NewPagedResult([]int{}, 0, 1, 0)
	require.EqualValues(t, 0, got.TotalPages())
}

func TestHasNextPage(t *testing.T) {
	t.Parallel()

	require.True(t, NewPagedResult([]int{}, 30, 2, 10).HasNextPage())
	require.False(t, NewPagedResult([]int{}, 30, 3, 10).HasNextPage())
}

func TestHasPreviousPage(t *testing.T) {
	t.Parallel()

	require.True(t, NewPagedResult([]int{}, 30, 2, 10).HasPreviousPage())
	require.False(t, NewPagedResult([]int{}, 30, 1, 10).HasPreviousPage())
}
