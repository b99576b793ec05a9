package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/luxeliving/catalog-api/config"
	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	pginfra "github.com/luxeliving/catalog-api/internal/infrastructure/postgres"
	"github.com/luxeliving/catalog-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	props := pginfra.NewPropertyRepository(pool)
	saved := pginfra.NewSavedPropertyRepository(pool)

	agent := ensureUser(ctx, users, &entity.User{
		Email: "sarah.johnson@luxeliving.com",
		Name:  "Sarah Johnson",
		Phone: "(555) 123-4567",
		Role:  entity.RoleAgent,
	}, "password123")
	buyer := ensureUser(ctx, users, &entity.User{
		Email: "john.doe@example.com",
		Name:  "John Doe",
		Phone: "(555) 987-6543",
		Role:  entity.RoleBuyer,
	}, "password123")
	fmt.Printf("users ready: agent=%s buyer=%s\n", agent.ID, buyer.ID)

	listings := sampleListings(agent.ID)
	for _, p := range listings {
		if _, err := props.GetByID(ctx, p.ID); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("failed to check property %s: %v", p.ID, err)
		}
		if err := props.Create(ctx, p); err != nil {
			log.Fatalf("failed to seed property %q: %v", p.Title, err)
		}
		fmt.Printf("seeded property: %s (%s)\n", p.Title, p.ID)
	}

	if err := saved.Create(ctx, &entity.SavedProperty{
		UserID:     buyer.ID,
		PropertyID: listings[0].ID,
		Notes:      "Interested in touring this property",
	}); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		log.Fatalf("failed to seed saved property: %v", err)
	}

	fmt.Println("seeding complete")
	fmt.Println("agent login: sarah.johnson@luxeliving.com / password123")
	fmt.Println("buyer login: john.doe@example.com / password123")
}

func ensureUser(ctx context.Context, users repository.UserRepository, u *entity.User, password string) *entity.User {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u.Password = hash
	if err := users.Create(ctx, u); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Fatalf("failed to seed user %s: %v", u.Email, err)
		}
		existing, err := users.GetByEmail(ctx, u.Email)
		if err != nil {
			log.Fatalf("failed to load existing user %s: %v", u.Email, err)
		}
		return existing
	}
	return u
}

func sampleListings(agentID string) []*entity.Property {
	return []*entity.Property{
		{
			ID:          "seed-villa-malibu",
			Title:       "Modern Villa with Ocean View",
			Description: "Luxurious 5-bedroom villa with panoramic ocean views, infinity pool, and smart home features. Located in exclusive Malibu neighborhood.",
			Price:       1250000,
			Type:        entity.TypeVilla,
			Bedrooms:    5,
			Bathrooms:   4,
			Sqft:        3200,
			YearBuilt:   intp(2020),
			Address:     "123 Ocean Drive",
			City:        "Malibu",
			State:       "CA",
			ZipCode:     "90265",
			Latitude:    floatp(34.0259),
			Longitude:   floatp(-118.7798),
			Amenities:   []string{"pool", "gym", "garage", "garden", "smart-home", "security-system"},
			Images: []string{
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1518780664697-55e3ad937233?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200&auto=format&fit=crop",
			},
			VirtualTour: "https://matterport.com/tour123",
			FloorPlan:   "/floorplans/villa-123.pdf",
			Featured:    true,
			AgentID:     agentID,
		},
		{
			ID:          "seed-apartment-sf",
			Title:       "Downtown Luxury Apartment",
			Description: "Modern apartment in the heart of downtown with concierge service, rooftop terrace, and premium finishes. Walking distance to restaurants and shops.",
			Price:       850000,
			Type:        entity.TypeApartment,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1800,
			YearBuilt:   intp(2019),
			Address:     "456 Skyline Blvd",
			City:        "San Francisco",
			State:       "CA",
			ZipCode:     "94105",
			Latitude:    floatp(37.7749),
			Longitude:   floatp(-122.4194),
			Amenities:   []string{"concierge", "rooftop", "gym", "parking", "elevator", "pet-friendly"},
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1494526585095-c41746248156?w=1200&auto=format&fit=crop",
			},
			Featured: true,
			AgentID:  agentID,
		},
		{
			ID:          "seed-house-austin",
			Title:       "Suburban Family Home",
			Description: "Spacious family home in quiet neighborhood with large backyard, updated kitchen, and excellent schools nearby. Perfect for growing families.",
			Price:       625000,
			Type:        entity.TypeHouse,
			Bedrooms:    4,
			Bathrooms:   3,
			Sqft:        2400,
			YearBuilt:   intp(2015),
			Address:     "789 Maple Street",
			City:        "Austin",
			State:       "TX",
			ZipCode:     "73301",
			Latitude:    floatp(30.2672),
			Longitude:   floatp(-97.7431),
			Amenities:   []string{"backyard", "fireplace", "garage", "patio", "deck", "garden"},
			Images: []string{
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200&auto=format&fit=crop",
			},
			Featured: false,
			AgentID:  agentID,
		},
		{
			ID:          "seed-cabin-aspen",
			Title:       "Mountain View Cabin",
			Description: "Cozy cabin with stunning mountain views, wood fireplace, and hiking trails. Perfect weekend getaway or vacation rental.",
			Price:       450000,
			Type:        entity.TypeHouse,
			Bedrooms:    3,
			Bathrooms:   2,
			Sqft:        1600,
			YearBuilt:   intp(2010),
			Address:     "101 Pine Road",
			City:        "Aspen",
			State:       "CO",
			ZipCode:     "81611",
			Latitude:    floatp(39.1911),
			Longitude:   floatp(-106.8175),
			Amenities:   []string{"fireplace", "mountain-view", "hiking-trails", "deck", "wood-stove"},
			Images: []string{
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1476820865390-c52aeebb9891?w=1200&auto=format&fit=crop",
			},
			Featured: true,
			AgentID:  agentID,
		},
	}
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
