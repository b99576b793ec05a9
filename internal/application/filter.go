package application

import (
	"net/url"
	"strconv"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
)

// Defaults applied when page/limit are missing or unusable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is the normalized pagination input. Both fields are >= 1;
// ParseListingQuery floors anything non-positive or non-numeric so page
// math can never produce a negative skip or divide by zero.
type PageRequest struct {
	Page  int
	Limit int
}

// ParseListingQuery translates untyped query parameters into the typed
// listing filter plus normalized pagination. Every parameter is optional
// and a malformed value means "no filter", never an error:
//   - type must name a known property type or it is ignored
//   - minPrice/maxPrice must parse as integers or they are ignored
//   - bedrooms is an inclusive minimum
//   - featured filters only on the literal string "true"
func ParseListingQuery(q url.Values) (repository.ListingFilter, PageRequest) {
	var f repository.ListingFilter

	if t, ok := entity.ParsePropertyType(q.Get("type")); ok {
		f.Type = &t
	}
	if v, err := strconv.ParseInt(q.Get("minPrice"), 10, 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseInt(q.Get("maxPrice"), 10, 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("bedrooms")); err == nil {
		f.MinBedrooms = &v
	}
	if q.Get("featured") == "true" {
		t := true
		f.Featured = &t
	}

	req := PageRequest{
		Page:  intOrFloor(q.Get("page"), DefaultPage),
		Limit: intOrFloor(q.Get("limit"), DefaultLimit),
	}
	return f, req
}

// intOrFloor parses s, falling back to def, and floors the result at 1.
func intOrFloor(s string, def int) int {
	n := def
	if s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			n = v
		}
	}
	if n < 1 {
		return 1
	}
	return n
}
