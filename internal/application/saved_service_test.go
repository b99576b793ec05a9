package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	"github.com/luxeliving/catalog-api/internal/infrastructure/memory"
)

func newSavedFixture(t *testing.T) (*SavedPropertyService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	seedCatalog(t, store)
	svc := NewSavedPropertyService(store.Properties(), store.Saved(), quietLogger())
	return svc, store
}

func TestSaveProperty(t *testing.T) {
	svc, _ := newSavedFixture(t)

	sp, err := svc.Save(context.Background(), "user-1", "villa-a", "love the pool")
	require.NoError(t, err)
	assert.NotEmpty(t, sp.ID)
	assert.Equal(t, "user-1", sp.UserID)
	assert.Equal(t, "villa-a", sp.PropertyID)
	assert.Equal(t, "love the pool", sp.Notes)
	require.NotNil(t, sp.Property)
	assert.Equal(t, "Villa A", sp.Property.Title)
}

func TestSaveUnknownProperty(t *testing.T) {
	svc, _ := newSavedFixture(t)

	_, err := svc.Save(context.Background(), "user-1", "no-such-listing", "")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestSaveDuplicateIsConflict(t *testing.T) {
	svc, _ := newSavedFixture(t)

	_, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), "user-1", "villa-a", "second try")
	assert.ErrorIs(t, err, ErrAlreadySaved)

	// a different user can still save the same property
	_, err = svc.Save(context.Background(), "user-2", "villa-a", "")
	assert.NoError(t, err)
}

// racingSavedRepo sees no existing bookmark on the pre-check but reports a
// unique violation on insert, the window where a concurrent save commits
// between the two.
type racingSavedRepo struct {
	repository.SavedPropertyRepository
}

func (r *racingSavedRepo) GetByUserAndProperty(context.Context, string, string) (*entity.SavedProperty, error) {
	return nil, repository.ErrNotFound
}

func (r *racingSavedRepo) Create(context.Context, *entity.SavedProperty) error {
	return repository.ErrDuplicate
}

func TestSaveRaceLosesAsConflict(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	svc := NewSavedPropertyService(store.Properties(), &racingSavedRepo{store.Saved()}, quietLogger())

	// the store's unique constraint is the authoritative guard: losing the
	// insert race is a Conflict, not a retryable write failure
	_, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	require.ErrorIs(t, err, ErrAlreadySaved)
	var we *StoreWriteError
	assert.False(t, errors.As(err, &we))
}

func TestSaveStoreFailureIsRetryable(t *testing.T) {
	svc, store := newSavedFixture(t)
	store.SetErr(errors.New("write timeout"))

	_, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	var we *StoreWriteError
	require.ErrorAs(t, err, &we)

	// same request succeeds once the store recovers
	store.SetErr(nil)
	_, err = svc.Save(context.Background(), "user-1", "villa-a", "")
	assert.NoError(t, err)
}

func TestListSavedNewestFirstPerUser(t *testing.T) {
	svc, store := newSavedFixture(t)

	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time {
		ts = ts.Add(time.Minute)
		return ts
	})

	for _, id := range []string{"villa-a", "villa-b", "house-a"} {
		_, err := svc.Save(context.Background(), "user-1", id, "")
		require.NoError(t, err)
	}
	_, err := svc.Save(context.Background(), "user-2", "villa-c", "")
	require.NoError(t, err)

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "house-a", items[0].PropertyID)
	assert.Equal(t, "villa-b", items[1].PropertyID)
	assert.Equal(t, "villa-a", items[2].PropertyID)
	require.NotNil(t, items[0].Property)
	assert.Equal(t, "House A", items[0].Property.Title)
}

func TestListSavedEmpty(t *testing.T) {
	svc, _ := newSavedFixture(t)

	items, err := svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRemoveSaved(t *testing.T) {
	svc, _ := newSavedFixture(t)

	sp, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "user-1", sp.ID))

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// removing again is NotFound
	assert.ErrorIs(t, svc.Remove(context.Background(), "user-1", sp.ID), ErrSavedNotFound)
}

func TestRemoveRequiresOwnership(t *testing.T) {
	svc, _ := newSavedFixture(t)

	sp, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	require.NoError(t, err)

	// another user's id probe reads the same as a missing row
	assert.ErrorIs(t, svc.Remove(context.Background(), "user-2", sp.ID), ErrSavedNotFound)

	items, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSaveAfterRemoveSucceeds(t *testing.T) {
	svc, _ := newSavedFixture(t)

	sp, err := svc.Save(context.Background(), "user-1", "villa-a", "")
	require.NoError(t, err)
	require.NoError(t, svc.Remove(context.Background(), "user-1", sp.ID))

	again, err := svc.Save(context.Background(), "user-1", "villa-a", "back again")
	require.NoError(t, err)
	assert.NotEqual(t, sp.ID, again.ID)
}
