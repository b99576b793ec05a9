package application

import (
	"context"
	"errors"
	"expvar"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	"github.com/luxeliving/catalog-api/pkg/helpers"
)

// Source markers attached to catalog read results.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

const featuredCacheKey = "catalog:featured"

// fallbackServes counts reads answered from the fallback catalog,
// exported under /api/debug/vars.
var fallbackServes = expvar.NewInt("catalog_fallback_serves")

// CatalogService answers property reads. Every operation degrades to the
// fixed fallback catalog on a store failure instead of surfacing an error:
// the storefront always gets an answer, possibly a stale sample one.
type CatalogService struct {
	Repo     repository.PropertyRepository
	Fallback *FallbackCatalog
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewCatalogService(repo repository.PropertyRepository, fallback *FallbackCatalog, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: repo, Fallback: fallback, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

// ListResult is a fully paginated catalog page.
type ListResult struct {
	Items      []*entity.Property
	Total      int
	Pagination Pagination
	Source     string
}

// List returns the page window matching the filter, newest first, with the
// total match count. A store failure substitutes the fallback catalog run
// through the same filter and pagination machinery.
func (s *CatalogService) List(ctx context.Context, f repository.ListingFilter, req PageRequest) ListResult {
	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return s.fallbackPage(f, req, err)
	}
	pg := Paginate(total, req)
	items, err := s.Repo.List(ctx, f, pg.Limit, pg.Skip)
	if err != nil {
		return s.fallbackPage(f, req, err)
	}
	if items == nil {
		items = []*entity.Property{}
	}
	return ListResult{Items: items, Total: total, Pagination: pg, Source: SourceLive}
}

func (s *CatalogService) fallbackPage(f repository.ListingFilter, req PageRequest, cause error) ListResult {
	s.degraded("list", cause)
	items, total := s.Fallback.Page(f, req)
	return ListResult{Items: items, Total: total, Pagination: Paginate(total, req), Source: SourceFallback}
}

// ListFeatured returns up to max featured listings, newest first. Live
// results are cached briefly in redis when a client is configured; cache
// failures are ignored.
func (s *CatalogService) ListFeatured(ctx context.Context, max int) ([]*entity.Property, string) {
	if s.Redis != nil {
		var cached []*entity.Property
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, featuredCacheKey, &cached); err == nil && ok {
			if max < len(cached) {
				cached = cached[:max]
			}
			return cached, SourceLive
		}
	}

	items, err := s.Repo.ListFeatured(ctx, max)
	if err != nil {
		s.degraded("featured", err)
		return s.Fallback.Featured(max), SourceFallback
	}
	if items == nil {
		items = []*entity.Property{}
	}
	if s.Redis != nil && len(items) > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, featuredCacheKey, items, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("featured cache write failed")
		}
	}
	return items, SourceLive
}

// GetByID returns one listing with the full agent projection. When the
// store cannot answer, or answers NotFound, the fallback catalog is
// consulted by id; an id in neither place is a genuine NotFound.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*entity.Property, string, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err == nil {
		return p, SourceLive, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.degraded("get", err)
	}
	if fb := s.Fallback.ByID(id); fb != nil {
		return fb, SourceFallback, nil
	}
	return nil, "", ErrPropertyNotFound
}

func (s *CatalogService) degraded(op string, err error) {
	fallbackServes.Add(1)
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(logrus.Fields{
		"op":               op,
		"fallback_version": s.Fallback.Version(),
	}).Warn("property store unavailable, serving fallback catalog")
}
