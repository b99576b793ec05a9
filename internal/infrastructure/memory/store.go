// Package memory provides in-memory implementations of the domain
// repositories. They back the unit and handler tests, including outage
// simulation for the catalog's degradation path.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
)

type Store struct {
	mu         sync.Mutex
	err        error
	users      map[string]*entity.User
	properties map[string]*entity.Property
	saved      map[string]*entity.SavedProperty
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:      map[string]*entity.User{},
		properties: map[string]*entity.Property{},
		saved:      map[string]*entity.SavedProperty{},
		now:        time.Now,
	}
}

// SetErr makes every subsequent call fail with err, simulating an
// unreachable store. Pass nil to recover.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetNow overrides the clock used for created-at stamps in tests.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() repository.UserRepository {
	return &userStore{s}
}

func (s *Store) Properties() repository.PropertyRepository {
	return &propertyStore{s}
}

func (s *Store) Saved() repository.SavedPropertyRepository {
	return &savedStore{s}
}

/* users */

type userStore struct{ s *Store }

func (r *userStore) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = entity.RoleBuyer
	}
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *userStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

/* properties */

type propertyStore struct{ s *Store }

func (r *propertyStore) Create(_ context.Context, p *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = entity.StatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.s.now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	cp := *p
	r.s.properties[p.ID] = &cp
	return nil
}

func (r *propertyStore) GetByID(_ context.Context, id string) (*entity.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	p, ok := r.s.properties[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	r.s.attachAgent(&cp, true)
	return &cp, nil
}

func (r *propertyStore) List(_ context.Context, f repository.ListingFilter, limit, offset int) ([]*entity.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	matched := r.s.match(f)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	out := make([]*entity.Property, 0, len(matched))
	for _, p := range matched {
		cp := *p
		r.s.attachAgent(&cp, false)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *propertyStore) Count(_ context.Context, f repository.ListingFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return 0, r.s.err
	}
	return len(r.s.match(f)), nil
}

func (r *propertyStore) ListFeatured(_ context.Context, max int) ([]*entity.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	featured := true
	matched := r.s.match(repository.ListingFilter{Featured: &featured})
	if max < len(matched) {
		matched = matched[:max]
	}
	out := make([]*entity.Property, 0, len(matched))
	for _, p := range matched {
		cp := *p
		r.s.attachAgent(&cp, false)
		out = append(out, &cp)
	}
	return out, nil
}

// match returns matching properties newest-created-first.
func (s *Store) match(f repository.ListingFilter) []*entity.Property {
	var out []*entity.Property
	for _, p := range s.properties {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *Store) attachAgent(p *entity.Property, withRole bool) {
	if p.AgentID == "" {
		p.Agent = nil
		return
	}
	u, ok := s.users[p.AgentID]
	if !ok {
		p.Agent = nil
		return
	}
	agent := &entity.AgentProfile{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
	if withRole {
		agent.Role = u.Role
	}
	p.Agent = agent
}

/* saved properties */

type savedStore struct{ s *Store }

func (r *savedStore) Create(_ context.Context, sp *entity.SavedProperty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	for _, existing := range r.s.saved {
		if existing.UserID == sp.UserID && existing.PropertyID == sp.PropertyID {
			return repository.ErrDuplicate
		}
	}
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	sp.CreatedAt = r.s.now()
	cp := *sp
	cp.Property = nil
	r.s.saved[sp.ID] = &cp
	return nil
}

func (r *savedStore) GetByID(_ context.Context, id string) (*entity.SavedProperty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	sp, ok := r.s.saved[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (r *savedStore) GetByUserAndProperty(_ context.Context, userID, propertyID string) (*entity.SavedProperty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	for _, sp := range r.s.saved {
		if sp.UserID == userID && sp.PropertyID == propertyID {
			cp := *sp
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *savedStore) ListByUser(_ context.Context, userID string) ([]*entity.SavedProperty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	var out []*entity.SavedProperty
	for _, sp := range r.s.saved {
		if sp.UserID != userID {
			continue
		}
		cp := *sp
		if p, ok := r.s.properties[sp.PropertyID]; ok {
			pc := *p
			r.s.attachAgent(&pc, false)
			cp.Property = &pc
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *savedStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.saved[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.saved, id)
	return nil
}
