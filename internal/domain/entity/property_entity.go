package entity

import "time"

// PropertyType enumerates the known listing categories.
type PropertyType string

const (
	TypeHouse     PropertyType = "HOUSE"
	TypeApartment PropertyType = "APARTMENT"
	TypeVilla     PropertyType = "VILLA"
	TypeCondo     PropertyType = "CONDO"
	TypeTownhouse PropertyType = "TOWNHOUSE"
	TypeLand      PropertyType = "LAND"
)

// ParsePropertyType reports whether s names a known property type.
func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(s) {
	case TypeHouse, TypeApartment, TypeVilla, TypeCondo, TypeTownhouse, TypeLand:
		return PropertyType(s), true
	}
	return "", false
}

// PropertyStatus is the listing lifecycle state.
type PropertyStatus string

const (
	StatusActive  PropertyStatus = "ACTIVE"
	StatusPending PropertyStatus = "PENDING"
	StatusSold    PropertyStatus = "SOLD"
)

// Property is a listing. Amenities and Images are always the decoded list
// form here; the persisted flat-string encoding never leaves the store layer.
type Property struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Type        PropertyType   `json:"type"`
	Status      PropertyStatus `json:"status"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Sqft        int            `json:"sqft"`
	YearBuilt   *int           `json:"yearBuilt,omitempty"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Amenities   []string       `json:"amenities"`
	Images      []string       `json:"images"`
	VirtualTour string         `json:"virtualTour,omitempty"`
	FloorPlan   string         `json:"floorPlan,omitempty"`
	Featured    bool           `json:"featured"`
	AgentID     string         `json:"-"`
	Agent       *AgentProfile  `json:"agent,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
