package application

import (
	"sort"
	"time"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
)

// FallbackVersion identifies the embedded sample catalog. Bump it when the
// sample listings change so degraded responses can be traced to a dataset.
const FallbackVersion = "2023.10"

// FallbackCatalog is the fixed, read-only sample dataset served when the
// property store cannot answer a read. One canonical id set is used by
// every read path. Safe for unlimited concurrent readers.
type FallbackCatalog struct {
	version    string
	properties []*entity.Property
	byID       map[string]*entity.Property
}

// NewFallbackCatalog builds the canonical sample catalog, ordered
// newest-created-first like live results.
func NewFallbackCatalog() *FallbackCatalog {
	props := sampleProperties()
	sort.Slice(props, func(i, j int) bool {
		return props[i].CreatedAt.After(props[j].CreatedAt)
	})
	byID := make(map[string]*entity.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}
	return &FallbackCatalog{version: FallbackVersion, properties: props, byID: byID}
}

func (f *FallbackCatalog) Version() string { return f.version }

// Featured returns up to max featured sample listings with the list-view
// agent projection (no role).
func (f *FallbackCatalog) Featured(max int) []*entity.Property {
	out := []*entity.Property{}
	for _, p := range f.properties {
		if !p.Featured {
			continue
		}
		out = append(out, listingView(p))
		if len(out) == max {
			break
		}
	}
	return out
}

// Page applies the same filter and window semantics as a live query.
func (f *FallbackCatalog) Page(filter repository.ListingFilter, req PageRequest) ([]*entity.Property, int) {
	var matched []*entity.Property
	for _, p := range f.properties {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	pg := Paginate(total, req)
	if pg.Skip >= total {
		return []*entity.Property{}, total
	}
	matched = matched[pg.Skip:]
	if pg.Limit < len(matched) {
		matched = matched[:pg.Limit]
	}
	out := make([]*entity.Property, 0, len(matched))
	for _, p := range matched {
		out = append(out, listingView(p))
	}
	return out, total
}

// ByID returns the sample listing with the detail-view agent projection
// (role included), or nil.
func (f *FallbackCatalog) ByID(id string) *entity.Property {
	p, ok := f.byID[id]
	if !ok {
		return nil
	}
	cp := *p
	if p.Agent != nil {
		agent := *p.Agent
		cp.Agent = &agent
	}
	return &cp
}

// listingView copies p with the reduced agent projection used by
// collection responses.
func listingView(p *entity.Property) *entity.Property {
	cp := *p
	if p.Agent != nil {
		agent := *p.Agent
		agent.Role = ""
		cp.Agent = &agent
	}
	return &cp
}

func sampleProperties() []*entity.Property {
	return []*entity.Property{
		{
			ID:          "luxury-villa-1",
			Title:       "Luxury Oceanfront Villa",
			Description: "Stunning villa with direct beach access and panoramic ocean views. Features include infinity pool, smart home automation, gourmet kitchen, wine cellar, home theater, and private beach access.",
			Price:       3200000,
			Type:        entity.TypeVilla,
			Status:      entity.StatusActive,
			Bedrooms:    5,
			Bathrooms:   4,
			Sqft:        4500,
			YearBuilt:   intp(2020),
			Address:     "123 Beach Boulevard",
			City:        "Miami",
			State:       "FL",
			ZipCode:     "33139",
			Latitude:    floatp(25.7617),
			Longitude:   floatp(-80.1918),
			Amenities:   []string{"Infinity Pool", "Private Beach Access", "Smart Home", "Wine Cellar", "Home Theater", "Gym", "Outdoor Kitchen"},
			Images: []string{
				"https://images.unsplash.com/photo-1613977257363-707ba9348227?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&auto=format&fit=crop",
			},
			VirtualTour: "https://my.matterport.com/show/?m=example123",
			FloorPlan:   "https://example.com/floorplans/villa-1.pdf",
			Featured:    true,
			AgentID:     "agent-1",
			Agent: &entity.AgentProfile{
				ID: "agent-1", Name: "John Luxury", Email: "john@luxeliving.com",
				Phone: "+1 (305) 555-0123", Role: entity.RoleAgent,
			},
			CreatedAt: date(2023, 1, 15),
			UpdatedAt: date(2023, 6, 20),
		},
		{
			ID:          "downtown-penthouse-2",
			Title:       "Modern Downtown Penthouse",
			Description: "Luxury penthouse with floor-to-ceiling windows offering breathtaking city views. Features include private rooftop access with outdoor kitchen, smart home system, heated floors, and premium finishes throughout.",
			Price:       1850000,
			Type:        entity.TypeApartment,
			Status:      entity.StatusActive,
			Bedrooms:    3,
			Bathrooms:   3,
			Sqft:        2800,
			YearBuilt:   intp(2019),
			Address:     "456 Skyline Avenue",
			City:        "New York",
			State:       "NY",
			ZipCode:     "10001",
			Latitude:    floatp(40.7128),
			Longitude:   floatp(-74.0060),
			Amenities:   []string{"Private Rooftop", "Concierge", "Fitness Center", "Valet Parking", "Pet Spa", "Smart Home", "Heated Floors"},
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=1200&auto=format&fit=crop",
			},
			VirtualTour: "https://my.matterport.com/show/?m=example456",
			FloorPlan:   "https://example.com/floorplans/penthouse-2.pdf",
			Featured:    true,
			AgentID:     "agent-2",
			Agent: &entity.AgentProfile{
				ID: "agent-2", Name: "Sarah Urban", Email: "sarah@luxeliving.com",
				Phone: "+1 (212) 555-0456", Role: entity.RoleAgent,
			},
			CreatedAt: date(2023, 2, 10),
			UpdatedAt: date(2023, 7, 15),
		},
		{
			ID:          "mountain-cabin-3",
			Title:       "Mountain Retreat Cabin",
			Description: "Cozy luxury cabin nestled in the mountains with panoramic views. Features include stone fireplace, outdoor hot tub, sauna, direct access to hiking trails, and custom woodwork throughout.",
			Price:       950000,
			Type:        entity.TypeHouse,
			Status:      entity.StatusActive,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        3200,
			YearBuilt:   intp(2018),
			Address:     "789 Mountain View Road",
			City:        "Aspen",
			State:       "CO",
			ZipCode:     "81611",
			Latitude:    floatp(39.1911),
			Longitude:   floatp(-106.8175),
			Amenities:   []string{"Stone Fireplace", "Outdoor Hot Tub", "Sauna", "Hiking Trail Access", "Garage", "Mountain Views", "Outdoor Kitchen", "Game Room"},
			Images: []string{
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1476820865390-c52aeebb9891?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200&auto=format&fit=crop",
			},
			VirtualTour: "https://my.matterport.com/show/?m=example789",
			FloorPlan:   "https://example.com/floorplans/cabin-3.pdf",
			Featured:    true,
			AgentID:     "agent-3",
			Agent: &entity.AgentProfile{
				ID: "agent-3", Name: "Michael Woods", Email: "michael@luxeliving.com",
				Phone: "+1 (970) 555-0789", Role: entity.RoleAgent,
			},
			CreatedAt: date(2023, 3, 5),
			UpdatedAt: date(2023, 8, 10),
		},
		{
			ID:          "urban-loft-4",
			Title:       "Urban Loft Studio",
			Description: "Modern loft in the heart of the city with exposed brick walls, high ceilings, and industrial-chic design. Perfect for urban professionals.",
			Price:       650000,
			Type:        entity.TypeApartment,
			Status:      entity.StatusActive,
			Bedrooms:    1,
			Bathrooms:   1,
			Sqft:        900,
			YearBuilt:   intp(2015),
			Address:     "101 Urban Street",
			City:        "Chicago",
			State:       "IL",
			ZipCode:     "60601",
			Latitude:    floatp(41.8781),
			Longitude:   floatp(-87.6298),
			Amenities:   []string{"Exposed Brick", "14-foot Ceilings", "City Views", "Hardwood Floors", "Modern Kitchen"},
			Images: []string{
				"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200&auto=format&fit=crop",
			},
			FloorPlan: "https://example.com/floorplans/loft-4.pdf",
			Featured:  false,
			AgentID:   "agent-4",
			Agent: &entity.AgentProfile{
				ID: "agent-4", Name: "David City", Email: "david@luxeliving.com",
				Phone: "+1 (312) 555-0912", Role: entity.RoleAgent,
			},
			CreatedAt: date(2023, 4, 12),
			UpdatedAt: date(2023, 9, 18),
		},
		{
			ID:          "family-home-5",
			Title:       "Suburban Family Home",
			Description: "Perfect family home in excellent school district with large backyard, updated kitchen, and finished basement. Great neighborhood with parks nearby.",
			Price:       850000,
			Type:        entity.TypeHouse,
			Status:      entity.StatusActive,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        2800,
			YearBuilt:   intp(2012),
			Address:     "202 Maple Street",
			City:        "Austin",
			State:       "TX",
			ZipCode:     "73301",
			Latitude:    floatp(30.2672),
			Longitude:   floatp(-97.7431),
			Amenities:   []string{"Large Backyard", "Playground", "2-Car Garage", "Updated Kitchen", "Finished Basement", "Patio", "Garden"},
			Images: []string{
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200&auto=format&fit=crop",
			},
			VirtualTour: "https://my.matterport.com/show/?m=example012",
			FloorPlan:   "https://example.com/floorplans/home-5.pdf",
			Featured:    false,
			AgentID:     "agent-5",
			Agent: &entity.AgentProfile{
				ID: "agent-5", Name: "Lisa Suburbs", Email: "lisa@luxeliving.com",
				Phone: "+1 (512) 555-0345", Role: entity.RoleAgent,
			},
			CreatedAt: date(2023, 5, 20),
			UpdatedAt: date(2023, 10, 25),
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
