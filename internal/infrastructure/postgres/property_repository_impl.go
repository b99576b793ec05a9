package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	"github.com/luxeliving/catalog-api/pkg/jsonlist"
)

const propertyColumns = `
	p.id, p.title, p.description, p.price, p.type, p.status,
	p.bedrooms, p.bathrooms, p.sqft, p.year_built,
	p.address, p.city, p.state, p.zip_code, p.latitude, p.longitude,
	p.amenities, p.images, p.virtual_tour, p.floor_plan,
	p.featured, p.agent_id, p.created_at, p.updated_at`

const agentSummaryColumns = `u.id, u.name, u.email, u.phone`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = entity.StatusActive
	}
	var agentID *string
	if p.AgentID != "" {
		agentID = &p.AgentID
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (
			id, title, description, price, type, status,
			bedrooms, bathrooms, sqft, year_built,
			address, city, state, zip_code, latitude, longitude,
			amenities, images, virtual_tour, floor_plan, featured, agent_id
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Price, p.Type, p.Status,
		p.Bedrooms, p.Bathrooms, p.Sqft, p.YearBuilt,
		p.Address, p.City, p.State, p.ZipCode, p.Latitude, p.Longitude,
		jsonlist.Encode(p.Amenities), jsonlist.Encode(p.Images),
		nullable(p.VirtualTour), nullable(p.FloorPlan), p.Featured, agentID)

	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+`, `+agentSummaryColumns+`, u.role
		FROM properties p
		LEFT JOIN users u ON u.id = p.agent_id
		WHERE p.id = $1
	`, id)

	p, err := scanProperty(row, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) List(ctx context.Context, f repository.ListingFilter, limit, offset int) ([]*entity.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	where, args := filterClauses(f)
	args = append(args, limit, offset)
	q := fmt.Sprintf(`
		SELECT `+propertyColumns+`, `+agentSummaryColumns+`
		FROM properties p
		LEFT JOIN users u ON u.id = p.agent_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertyRepository) Count(ctx context.Context, f repository.ListingFilter) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	where, args := filterClauses(f)
	var total int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties p "+where, args...).Scan(&total)
	return total, err
}

func (r *PropertyRepository) ListFeatured(ctx context.Context, max int) ([]*entity.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+`, `+agentSummaryColumns+`
		FROM properties p
		LEFT JOIN users u ON u.id = p.agent_id
		WHERE p.featured = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1
	`, max)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// filterClauses turns the typed filter into a WHERE fragment. The filter is
// conjunctive; every set field adds one clause.
func filterClauses(f repository.ListingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Type != nil {
		add("p.type = $%d", *f.Type)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.MinBedrooms != nil {
		add("p.bedrooms >= $%d", *f.MinBedrooms)
	}
	if f.Featured != nil {
		add("p.featured = $%d", *f.Featured)
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := "WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

// scanProperty reads one joined row. The agent projection columns are
// nullable because agent_id can be absent (agents are deleted with
// SET NULL semantics). withRole expects one extra u.role column.
func scanProperty(row pgx.Row, withRole bool) (*entity.Property, error) {
	var (
		p                      entity.Property
		amenities, images      string
		virtualTour, floorPlan *string
		agentID                *string
		aID, aName, aEmail     *string
		aPhone, aRole          *string
	)
	dest := []any{
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.Status,
		&p.Bedrooms, &p.Bathrooms, &p.Sqft, &p.YearBuilt,
		&p.Address, &p.City, &p.State, &p.ZipCode, &p.Latitude, &p.Longitude,
		&amenities, &images, &virtualTour, &floorPlan,
		&p.Featured, &agentID, &p.CreatedAt, &p.UpdatedAt,
		&aID, &aName, &aEmail, &aPhone,
	}
	if withRole {
		dest = append(dest, &aRole)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	p.Amenities = jsonlist.Decode(amenities)
	p.Images = jsonlist.Decode(images)
	p.VirtualTour = deref(virtualTour)
	p.FloorPlan = deref(floorPlan)
	p.AgentID = deref(agentID)
	if aID != nil {
		agent := &entity.AgentProfile{
			ID:    *aID,
			Name:  deref(aName),
			Email: deref(aEmail),
			Phone: deref(aPhone),
		}
		if withRole && aRole != nil {
			agent.Role = entity.Role(*aRole)
		}
		p.Agent = agent
	}
	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
