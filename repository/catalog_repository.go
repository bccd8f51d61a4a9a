package repository

import (
	"context"

	"propdesk/domain"
)

// CatalogRepository is the slice of the REST backend the list screens need.
type CatalogRepository interface {
	List(ctx context.Context, c domain.Collection) ([]domain.Record, error)
	Delete(ctx context.Context, c domain.Collection, id string) error
}
