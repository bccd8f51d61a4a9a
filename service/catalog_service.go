package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"

	"propdesk/domain"
	"propdesk/format"
	"propdesk/listing"
	"propdesk/repository"
)

const cacheKeyPrefix = "catalog:"

type CatalogService struct {
	repo     repository.CatalogRepository
	cache    repository.CacheRepository
	ttl      time.Duration
	pageSize int
}

// NewCatalogService creates a CatalogService. pageSize is used when a
// search does not ask for a page size of its own.
func NewCatalogService(
	repo repository.CatalogRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	pageSize int,
) *CatalogService {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &CatalogService{repo: repo, cache: cache, ttl: ttl, pageSize: pageSize}
}

func cacheKey(c domain.Collection) string {
	return cacheKeyPrefix + string(c)
}

// List returns the full collection, served from cache when possible.
func (s *CatalogService) List(ctx context.Context, c domain.Collection) ([]domain.Record, error) {
	if _, err := domain.ParseCollection(string(c)); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, cacheKey(c)); ok {
		records, err := domain.DecodeRecords(c, []byte(cached))
		if err == nil {
			return records, nil
		}
		log.Printf("Warning: dropping unreadable cache entry for %s: %v", c, err)
	}

	return s.fetch(ctx, c)
}

func (s *CatalogService) fetch(ctx context.Context, c domain.Collection) ([]domain.Record, error) {
	records, err := s.repo.List(ctx, c)
	if err != nil {
		return nil, err
	}
	records = normalize(records)

	payload, err := json.Marshal(records)
	if err != nil {
		log.Printf("Warning: failed to encode %s for cache: %v", c, err)
		return records, nil
	}
	if err := s.cache.Set(ctx, cacheKey(c), string(payload), s.ttl); err != nil {
		log.Printf("Warning: failed to cache %s: %v", c, err)
	}
	return records, nil
}

// Search filters the collection by query and the extra predicates, then
// returns the requested page. Pages outside the valid range are clamped.
func (s *CatalogService) Search(
	ctx context.Context,
	c domain.Collection,
	query string,
	page, pageSize int,
	where ...func(domain.Record) bool,
) (domain.PageResult, error) {
	records, err := s.List(ctx, c)
	if err != nil {
		return domain.PageResult{}, err
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	matches := listing.Filter(keep(records, where), query, domain.Record.SearchFields)
	p := listing.NewPaginator(matches, pageSize)
	p.GoTo(page)

	items := p.Page()
	if items == nil {
		items = []domain.Record{}
	}
	return domain.PageResult{Items: items, Pagination: p.Meta()}, nil
}

func keep(records []domain.Record, where []func(domain.Record) bool) []domain.Record {
	if len(where) == 0 {
		return records
	}
	out := make([]domain.Record, 0, len(records))
next:
	for _, r := range records {
		for _, ok := range where {
			if !ok(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Delete removes a record through the backend and drops the cached list.
func (s *CatalogService) Delete(ctx context.Context, c domain.Collection, id string) error {
	if _, err := domain.ParseCollection(string(c)); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, cacheKey(c)); err != nil {
		log.Printf("Warning: failed to invalidate cache for %s: %v", c, err)
	}
	return nil
}

// Warm refetches every collection into the cache. It keeps going after a
// failure and reports all failures together.
func (s *CatalogService) Warm(ctx context.Context) error {
	var errs []error
	for _, c := range domain.Collections {
		if _, err := s.fetch(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}
	return errors.Join(errs...)
}

func normalize(records []domain.Record) []domain.Record {
	for i, r := range records {
		if p, ok := r.(domain.Property); ok {
			p.Description = plainText(p.Description)
			p.PriceLabel = priceLabel(p.Price)
			records[i] = p
		}
	}
	return records
}

func priceLabel(price float64) string {
	if price <= 0 {
		return "N/A"
	}
	return format.FormatINR(price)
}

// plainText strips markup from rich-text descriptions entered in the admin.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
