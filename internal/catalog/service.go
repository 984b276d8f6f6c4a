package catalog

import (
	"fmt"
	"sort"

	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"go.uber.org/multierr"
)

const featuredCount = 4

// Service exposes read access to the static product catalog.
type Service interface {
	List(input ListInput) []Product
	Get(id int) (*Details, error)
	Featured() []Product
}

type service struct {
	details []Details
	byID    map[int]int
}

// NewService builds the catalog service from the built-in seed. The
// seed is checked for integrity once, at construction.
func NewService() (Service, error) {
	return newService(seedDetails())
}

func newService(details []Details) (Service, error) {
	if err := verifySeed(details); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "catalog seed invalid")
	}

	byID := make(map[int]int, len(details))
	for i, d := range details {
		byID[d.ID] = i
	}

	return &service{details: details, byID: byID}, nil
}

// List returns the filtered, ordered view of the catalog. Both
// selectors are total: unknown values fall back to all/featured.
func (s *service) List(input ListInput) []Product {
	filtered := make([]Product, 0, len(s.details))
	for _, d := range s.details {
		if input.Category != CategoryAll && d.Category != string(input.Category) {
			continue
		}
		filtered = append(filtered, d.Product)
	}

	// Stable sorts keep seed order for equal keys; featured keeps it
	// outright.
	switch input.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PriceCents < filtered[j].PriceCents })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PriceCents > filtered[j].PriceCents })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })
	}

	return filtered
}

// Get returns the detail record for the given product id.
func (s *service) Get(id int) (*Details, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	d := s.details[idx]
	return &d, nil
}

// Featured returns the home page subset, in seed order.
func (s *service) Featured() []Product {
	n := featuredCount
	if n > len(s.details) {
		n = len(s.details)
	}
	featured := make([]Product, 0, n)
	for _, d := range s.details[:n] {
		featured = append(featured, d.Product)
	}
	return featured
}

func verifySeed(details []Details) error {
	var errs []error
	seen := map[int]bool{}
	for _, d := range details {
		if d.ID <= 0 {
			errs = append(errs, fmt.Errorf("product %q: non-positive id %d", d.Name, d.ID))
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("duplicate product id %d", d.ID))
		}
		seen[d.ID] = true
		if d.PriceCents <= 0 {
			errs = append(errs, fmt.Errorf("product %d: non-positive price", d.ID))
		}
		if d.OriginalPriceCents != nil && *d.OriginalPriceCents <= d.PriceCents {
			errs = append(errs, fmt.Errorf("product %d: original price must exceed price", d.ID))
		}
		if d.StockCount < 1 {
			errs = append(errs, fmt.Errorf("product %d: stock count below 1", d.ID))
		}
		if d.Category != string(CategoryElectronics) && d.Category != string(CategoryClothing) && d.Category != string(CategoryAccessories) {
			errs = append(errs, fmt.Errorf("product %d: unknown category %q", d.ID, d.Category))
		}
	}
	return multierr.Combine(errs...)
}
