package view

import (
	"testing"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, title, category string, price, rate float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    title,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Rating:   catalog.Rating{Rate: rate},
	}
}

func ids(products []catalog.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func Test_FilterSort_Filter(t *testing.T) {
	snapshot := []catalog.Product{
		product(1, "One", "a", 1, 0),
		product(2, "Two", "b", 1, 0),
	}
	testCases := []struct {
		name     string
		category string
		expected []int
	}{
		{name: "exact category match", category: "a", expected: []int{1}},
		{name: "all keeps everything in order", category: CategoryAll, expected: []int{1, 2}},
		{name: "unknown category matches nothing", category: "c", expected: []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			got := FilterSort(snapshot, tc.category, SortDefault)
			// then
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func Test_FilterSort_Sorting(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot []catalog.Product
		mode     SortMode
		expected []int
	}{
		{
			name: "price-low is stable on ties",
			snapshot: []catalog.Product{
				product(1, "A", "a", 10, 0),
				product(2, "B", "a", 10, 0),
				product(3, "C", "a", 5, 0),
			},
			mode:     SortPriceLow,
			expected: []int{3, 1, 2},
		},
		{
			name: "price-high descends",
			snapshot: []catalog.Product{
				product(1, "A", "a", 10, 0),
				product(2, "B", "a", 15, 0),
				product(3, "C", "a", 10, 0),
			},
			mode:     SortPriceHigh,
			expected: []int{2, 1, 3},
		},
		{
			name: "rating descends, ties stable",
			snapshot: []catalog.Product{
				product(1, "A", "a", 1, 3.9),
				product(2, "B", "a", 1, 4.7),
				product(3, "C", "a", 1, 3.9),
			},
			mode:     SortRating,
			expected: []int{2, 1, 3},
		},
		{
			name: "name sorts case-insensitively like a locale compare",
			snapshot: []catalog.Product{
				product(1, "Zebra Mug", "a", 1, 0),
				product(2, "apple basket", "a", 1, 0),
				product(3, "Lemon", "a", 1, 0),
			},
			mode:     SortName,
			expected: []int{2, 3, 1},
		},
		{
			name: "default preserves snapshot order",
			snapshot: []catalog.Product{
				product(3, "C", "a", 9, 0),
				product(1, "A", "a", 1, 0),
				product(2, "B", "a", 5, 0),
			},
			mode:     SortDefault,
			expected: []int{3, 1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			got := FilterSort(tc.snapshot, CategoryAll, tc.mode)
			// then
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func Test_FilterSort_DoesNotMutateSnapshot(t *testing.T) {
	// given
	snapshot := []catalog.Product{
		product(1, "B", "a", 10, 0),
		product(2, "A", "a", 5, 0),
	}
	// when
	_ = FilterSort(snapshot, CategoryAll, SortPriceLow)
	// then
	assert.Equal(t, []int{1, 2}, ids(snapshot))
}

func Test_FilterSort_IsDeterministic(t *testing.T) {
	snapshot := []catalog.Product{
		product(1, "B", "a", 10, 2),
		product(2, "A", "b", 5, 4),
		product(3, "C", "a", 10, 4),
	}
	first := FilterSort(snapshot, "a", SortRating)
	second := FilterSort(snapshot, "a", SortRating)
	assert.Equal(t, first, second)
}

func Test_ParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortMode("price-low"))
	assert.Equal(t, SortName, ParseSortMode("name"))
	assert.Equal(t, SortDefault, ParseSortMode(""))
	assert.Equal(t, SortDefault, ParseSortMode("garbage"))
}

func Test_CategoryOptions(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot []catalog.Product
		expected []string
	}{
		{
			name: "distinct categories in first-seen order, no duplicates",
			snapshot: []catalog.Product{
				product(1, "One", "a", 1, 0),
				product(2, "Two", "b", 1, 0),
				product(3, "Three", "a", 1, 0),
			},
			expected: []string{"all", "a", "b"},
		},
		{
			name:     "empty snapshot reduces to just all",
			snapshot: nil,
			expected: []string{"all"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryOptions(tc.snapshot))
		})
	}
}

func Test_CategoryCounts(t *testing.T) {
	// given
	snapshot := []catalog.Product{
		product(1, "One", "a", 1, 0),
		product(2, "Two", "b", 1, 0),
		product(3, "Three", "a", 1, 0),
	}
	// when
	counts := CategoryCounts(snapshot)
	// then: counts cover the full snapshot regardless of any filter selection
	require.Len(t, counts, 2)
	assert.Equal(t, 2, counts["a"])
	assert.Equal(t, 1, counts["b"])
	assert.Empty(t, CategoryCounts(nil))
}
