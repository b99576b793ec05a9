package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	"github.com/luxeliving/catalog-api/pkg/jsonlist"
)

type SavedPropertyRepository struct {
	pool *pgxpool.Pool
}

func NewSavedPropertyRepository(pool *pgxpool.Pool) *SavedPropertyRepository {
	return &SavedPropertyRepository{pool: pool}
}

// Create inserts the bookmark row. The UNIQUE(user_id, property_id)
// constraint is the authoritative duplicate guard; a violation maps to
// ErrDuplicate so concurrent saves of the same pair collapse to Conflict.
func (r *SavedPropertyRepository) Create(ctx context.Context, sp *entity.SavedProperty) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO saved_properties (id, user_id, property_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, sp.ID, sp.UserID, sp.PropertyID, nullable(sp.Notes))

	if err := row.Scan(&sp.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *SavedPropertyRepository) GetByID(ctx context.Context, id string) (*entity.SavedProperty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, property_id, notes, created_at
		FROM saved_properties
		WHERE id = $1
	`, id)
	return scanSavedRow(row)
}

func (r *SavedPropertyRepository) GetByUserAndProperty(ctx context.Context, userID, propertyID string) (*entity.SavedProperty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, property_id, notes, created_at
		FROM saved_properties
		WHERE user_id = $1 AND property_id = $2
	`, userID, propertyID)
	return scanSavedRow(row)
}

// ListByUser returns the user's bookmarks newest first, each joined with
// its property (list fields decoded by scanProperty).
func (r *SavedPropertyRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SavedProperty, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT sp.id, sp.user_id, sp.property_id, sp.notes, sp.created_at,
		`+propertyColumns+`, `+agentSummaryColumns+`
		FROM saved_properties sp
		JOIN properties p ON p.id = sp.property_id
		LEFT JOIN users u ON u.id = p.agent_id
		WHERE sp.user_id = $1
		ORDER BY sp.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.SavedProperty
	for rows.Next() {
		sp, err := scanSavedWithProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *SavedPropertyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.pool.Exec(ctx, `DELETE FROM saved_properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanSavedRow(row pgx.Row) (*entity.SavedProperty, error) {
	sp := &entity.SavedProperty{}
	var notes *string
	if err := row.Scan(&sp.ID, &sp.UserID, &sp.PropertyID, &notes, &sp.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	sp.Notes = deref(notes)
	return sp, nil
}

func scanSavedWithProperty(rows pgx.Rows) (*entity.SavedProperty, error) {
	// Scans the saved columns followed by the joined property columns in a
	// single pass, mirroring the column order of ListByUser.
	sp := &entity.SavedProperty{}
	var (
		notes                  *string
		p                      entity.Property
		amenities, images      string
		virtualTour, floorPlan *string
		agentID                *string
		aID, aName, aEmail     *string
		aPhone                 *string
	)
	err := rows.Scan(
		&sp.ID, &sp.UserID, &sp.PropertyID, &notes, &sp.CreatedAt,
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.Status,
		&p.Bedrooms, &p.Bathrooms, &p.Sqft, &p.YearBuilt,
		&p.Address, &p.City, &p.State, &p.ZipCode, &p.Latitude, &p.Longitude,
		&amenities, &images, &virtualTour, &floorPlan,
		&p.Featured, &agentID, &p.CreatedAt, &p.UpdatedAt,
		&aID, &aName, &aEmail, &aPhone,
	)
	if err != nil {
		return nil, err
	}
	sp.Notes = deref(notes)
	p.Amenities = jsonlist.Decode(amenities)
	p.Images = jsonlist.Decode(images)
	p.VirtualTour = deref(virtualTour)
	p.FloorPlan = deref(floorPlan)
	p.AgentID = deref(agentID)
	if aID != nil {
		p.Agent = &entity.AgentProfile{ID: *aID, Name: deref(aName), Email: deref(aEmail), Phone: deref(aPhone)}
	}
	sp.Property = &p
	return sp, nil
}

var _ repository.SavedPropertyRepository = (*SavedPropertyRepository)(nil)
