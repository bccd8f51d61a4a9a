package service

import (
	"context"
	"encoding/csv"
	"io"

	"propdesk/domain"
	"propdesk/listing"
)

var customerCSVHeader = []string{"name", "email", "mobile_no", "location", "status", "createdAt"}

// Customers returns the customers matching query and, when given, created
// inside rng.
func (s *CatalogService) Customers(ctx context.Context, query string, rng *domain.DateRange) ([]domain.Customer, error) {
	records, err := s.List(ctx, domain.Customers)
	if err != nil {
		return nil, err
	}

	var where []func(domain.Record) bool
	if rng != nil {
		where = append(where, rng.Contains)
	}

	var out []domain.Customer
	for _, r := range listing.Filter(keep(records, where), query, domain.Record.SearchFields) {
		if c, ok := r.(domain.Customer); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// WriteCustomersCSV writes the customer sheet with createdAt as dd/mm/yyyy.
func WriteCustomersCSV(w io.Writer, customers []domain.Customer) error {
	if len(customers) == 0 {
		return domain.ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(customerCSVHeader); err != nil {
		return err
	}
	for _, c := range customers {
		created := ""
		if t, ok := c.CreatedTime(); ok {
			created = t.Format("02/01/2006")
		}
		row := []string{c.Name, c.Email, c.MobileNo, c.Location, c.Status, created}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
