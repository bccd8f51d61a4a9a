package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"propdesk/domain"
)

type endpoint struct {
	list     string
	envelope string
	delete   string
}

// endpoints mirrors the admin API the app talks to. An empty delete path
// means the backend has no delete route for that list.
var endpoints = map[domain.Collection]endpoint{
	domain.Properties: {list: "/api/admin/getproperties", envelope: "myproperty", delete: "/api/admin/deleteproperty/"},
	domain.Agents:     {list: "/api/admin/getagents", envelope: "myagent", delete: "/api/admin/deleteagent/"},
	domain.Leads:      {list: "/api/admin/getopenleads", envelope: "myleads"},
	domain.Banks:      {list: "/api/admin/banks", envelope: "mybank", delete: "/api/admin/deletebank/"},
	domain.Locations:  {list: "/api/admin/getlocation", envelope: "mylocation", delete: "/api/admin/deletelocation/"},
	domain.Customers:  {list: "/api/admin/customers", envelope: "customers"},
	domain.Compare:    {list: "/api/admin/getcompareprop", envelope: "mycompare", delete: "/api/admin/removecompare/"},
}

// CatalogHTTP reads the catalogue from the REST backend.
type CatalogHTTP struct {
	client *resty.Client
}

func NewCatalogHTTP(baseURL string, timeout time.Duration) *CatalogHTTP {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	return &CatalogHTTP{client: client}
}

func lookup(c domain.Collection) (endpoint, error) {
	ep, ok := endpoints[c]
	if !ok {
		return endpoint{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, c)
	}
	return ep, nil
}

func (r *CatalogHTTP) List(ctx context.Context, c domain.Collection) ([]domain.Record, error) {
	ep, err := lookup(c)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.R().SetContext(ctx).Get(ep.list)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrBackend, c, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: list %s: status %d", domain.ErrBackend, c, resp.StatusCode())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrBackend, c, err)
	}

	records, err := domain.DecodeRecords(c, body[ep.envelope])
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrBackend, c, err)
	}
	return records, nil
}

func (r *CatalogHTTP) Delete(ctx context.Context, c domain.Collection, id string) error {
	ep, err := lookup(c)
	if err != nil {
		return err
	}
	if ep.delete == "" {
		return fmt.Errorf("%w: %s", domain.ErrDeleteUnsupported, c)
	}

	resp, err := r.client.R().SetContext(ctx).Delete(ep.delete + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", domain.ErrBackend, c, id, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, c, id)
	case resp.IsError():
		return fmt.Errorf("%w: delete %s/%s: status %d", domain.ErrBackend, c, id, resp.StatusCode())
	}
	return nil
}
