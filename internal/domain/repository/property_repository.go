package repository

import (
	"context"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
)

// PropertyRepository defines the read/create surface the catalog needs from
// the property store. List and GetByID return records with agent projections
// attached and list fields already decoded.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context, f ListingFilter, limit, offset int) ([]*entity.Property, error)
	Count(ctx context.Context, f ListingFilter) (int, error)
	ListFeatured(ctx context.Context, max int) ([]*entity.Property, error)
}
