package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"propdesk/domain"
)

// CatalogMemory is an in-memory CatalogRepository.
type CatalogMemory struct {
	mu   sync.RWMutex
	data map[domain.Collection][]domain.Record
}

func NewCatalogMemory() *CatalogMemory {
	return &CatalogMemory{
		data: make(map[domain.Collection][]domain.Record),
	}
}

// Put appends records to a collection.
func (r *CatalogMemory) Put(c domain.Collection, records ...domain.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[c] = append(r.data[c], records...)
}

func (r *CatalogMemory) List(_ context.Context, c domain.Collection) ([]domain.Record, error) {
	if _, err := domain.ParseCollection(string(c)); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.data[c]), nil
}

func (r *CatalogMemory) Delete(_ context.Context, c domain.Collection, id string) error {
	if _, err := domain.ParseCollection(string(c)); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.data[c]
	i := slices.IndexFunc(rows, func(rec domain.Record) bool { return rec.RecordID() == id })
	if i < 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, c, id)
	}
	r.data[c] = slices.Delete(rows, i, i+1)
	return nil
}
