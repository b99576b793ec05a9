package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
)

// SavedPropertyService manages the bookmark relationship between a user and
// a property. Each pair moves absent -> saved -> absent and nothing else:
// a duplicate save is a Conflict, a remove of an absent row is NotFound.
type SavedPropertyService struct {
	Props  repository.PropertyRepository
	Saved  repository.SavedPropertyRepository
	Logger *logrus.Logger
}

func NewSavedPropertyService(props repository.PropertyRepository, saved repository.SavedPropertyRepository, logger *logrus.Logger) *SavedPropertyService {
	return &SavedPropertyService{Props: props, Saved: saved, Logger: logger}
}

// Save bookmarks propertyID for uid. The existence pre-check is only an
// early exit; the store's unique constraint decides races, and its
// violation reports the same Conflict.
func (s *SavedPropertyService) Save(ctx context.Context, uid, propertyID, notes string) (*entity.SavedProperty, error) {
	p, err := s.Props.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, writeFailure(err)
	}

	if _, err := s.Saved.GetByUserAndProperty(ctx, uid, propertyID); err == nil {
		return nil, ErrAlreadySaved
	}

	sp := &entity.SavedProperty{UserID: uid, PropertyID: propertyID, Notes: notes}
	if err := s.Saved.Create(ctx, sp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySaved
		}
		return nil, writeFailure(err)
	}
	sp.Property = p
	return sp, nil
}

// List returns uid's bookmarks newest first, each joined with its property.
func (s *SavedPropertyService) List(ctx context.Context, uid string) ([]*entity.SavedProperty, error) {
	items, err := s.Saved.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.SavedProperty{}
	}
	return items, nil
}

// Remove deletes the bookmark savedID if it belongs to uid. A row that does
// not exist and a row owned by someone else produce the same NotFound, so
// callers cannot probe other users' bookmarks.
func (s *SavedPropertyService) Remove(ctx context.Context, uid, savedID string) error {
	sp, err := s.Saved.GetByID(ctx, savedID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSavedNotFound
		}
		return writeFailure(err)
	}
	if sp.UserID != uid {
		return ErrSavedNotFound
	}
	if err := s.Saved.Delete(ctx, savedID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSavedNotFound
		}
		return writeFailure(err)
	}
	return nil
}
