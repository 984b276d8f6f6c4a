package catalog

import "strings"

// Category filters the shop listing.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
)

// SortKey orders the shop listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseCategory maps a query value onto a known category. Unknown or
// empty values read as CategoryAll so listing stays a total function.
func ParseCategory(value string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryElectronics:
		return CategoryElectronics
	case CategoryClothing:
		return CategoryClothing
	case CategoryAccessories:
		return CategoryAccessories
	default:
		return CategoryAll
	}
}

// ParseSortKey maps a query value onto a known sort key, defaulting to
// the catalog's featured order.
func ParseSortKey(value string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(value))) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortRating:
		return SortRating
	case SortNewest:
		return SortNewest
	default:
		return SortFeatured
	}
}

// ListInput captures the shop page's filter and sort selectors.
type ListInput struct {
	Category Category
	Sort     SortKey
}
