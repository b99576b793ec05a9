package repository

import (
	"context"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
)

// SavedPropertyRepository persists the (user, property) bookmark rows.
// Create returns ErrDuplicate when the pair is already bookmarked; the
// store's unique constraint is the authoritative guard, not the caller's
// pre-check.
type SavedPropertyRepository interface {
	Create(ctx context.Context, sp *entity.SavedProperty) error
	GetByID(ctx context.Context, id string) (*entity.SavedProperty, error)
	GetByUserAndProperty(ctx context.Context, userID, propertyID string) (*entity.SavedProperty, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedProperty, error)
	Delete(ctx context.Context, id string) error
}
