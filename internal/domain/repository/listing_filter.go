package repository

import "github.com/luxeliving/catalog-api/internal/domain/entity"

// ListingFilter is the typed predicate the catalog builds once from query
// parameters and the store adapter consumes opaquely. Nil fields mean
// "no constraint"; all set fields combine with AND.
type ListingFilter struct {
	Type        *entity.PropertyType
	MinPrice    *int64
	MaxPrice    *int64
	MinBedrooms *int
	Featured    *bool
}

// Matches reports whether p satisfies every set clause. It is the reference
// semantics for the filter; SQL adapters must agree with it.
func (f ListingFilter) Matches(p *entity.Property) bool {
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}
