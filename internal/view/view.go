// Package view derives the product list to display from the last fetched
// catalog snapshot and the user-chosen selectors. Everything here is a pure
// function of its inputs; the snapshot is never mutated.
package view

import (
	"sort"

	"github.com/abgdnv/storefront/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the sentinel selector value that keeps every product.
const CategoryAll = "all"

// SortMode selects the ordering of the filtered product list.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortRating    SortMode = "rating"
	SortName      SortMode = "name"
)

// ParseSortMode maps a query string value to a SortMode. Unknown values fall
// back to SortDefault.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortName:
		return SortMode(s)
	default:
		return SortDefault
	}
}

// SortModes lists the selectable sort modes with their display labels, in
// menu order.
func SortModes() []struct{ Value, Label string } {
	return []struct{ Value, Label string }{
		{string(SortDefault), "Sort by: Default"},
		{string(SortPriceLow), "Price: Low to High"},
		{string(SortPriceHigh), "Price: High to Low"},
		{string(SortRating), "Highest Rated"},
		{string(SortName), "Name: A to Z"},
	}
}

// FilterSort returns a new sequence holding the products matching the
// category selector, ordered per the sort mode. All sorts are stable: equal
// elements keep their relative snapshot order, and SortDefault preserves the
// snapshot order outright.
func FilterSort(products []catalog.Product, category string, mode SortMode) []catalog.Product {
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if category == CategoryAll || p.Category == category {
			filtered = append(filtered, p)
		}
	}

	switch mode {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[j].Price.LessThan(filtered[i].Price)
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating.Rate > filtered[j].Rating.Rate
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	}
	return filtered
}

// CategoryOptions returns the distinct categories present in the snapshot,
// in first-seen order, prefixed with the "all" sentinel. Recomputed from the
// snapshot on every call.
func CategoryOptions(products []catalog.Product) []string {
	options := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			options = append(options, p.Category)
		}
	}
	return options
}

// CategoryCounts maps each category present in the snapshot to the number of
// products carrying it. Counts are always over the full snapshot, independent
// of the current filter selection.
func CategoryCounts(products []catalog.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}
