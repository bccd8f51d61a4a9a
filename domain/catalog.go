package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Collection names one of the admin/customer lists served by the backend.
type Collection string

const (
	Properties Collection = "properties"
	Agents     Collection = "agents"
	Leads      Collection = "leads"
	Banks      Collection = "banks"
	Locations  Collection = "locations"
	Customers  Collection = "customers"
	Compare    Collection = "compare"
)

// Collections lists every known collection in a stable order.
var Collections = []Collection{Properties, Agents, Leads, Banks, Locations, Customers, Compare}

func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}

// Record is a single row of a collection. SearchFields returns the values
// that the free-text search on that screen looks at.
type Record interface {
	RecordID() string
	SearchFields() []string
}

type Property struct {
	ID             string  `json:"_id"`
	Title          string  `json:"title"`
	BuilderName    string  `json:"builder_name"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	PropertyType   string  `json:"property_type"`
	PropertyStatus string  `json:"property_status"`
	ListingStatus  string  `json:"listing_status"`
	PropertyFor    string  `json:"property_for"`
	Price          float64 `json:"price"`
	PriceLabel     string  `json:"price_label,omitempty"`
	AreaFrom       string  `json:"area_from"`
	AreaTo         string  `json:"area_to"`
	FrontImage     string  `json:"frontimage"`
}

func (p Property) RecordID() string { return p.ID }

func (p Property) SearchFields() []string {
	return []string{
		p.Title, p.BuilderName, p.Location, p.PropertyType,
		p.PropertyStatus, p.ListingStatus, p.PropertyFor, p.Description,
	}
}

type Agent struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	MobileNo string `json:"mobile_no"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

func (a Agent) RecordID() string { return a.ID }

func (a Agent) SearchFields() []string {
	return []string{a.Name, a.Location, a.Status}
}

type Lead struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Assigned  string `json:"assigned"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (l Lead) CreatedTime() (time.Time, bool) { return parseCreated(l.CreatedAt) }

func (l Lead) RecordID() string { return l.ID }

func (l Lead) SearchFields() []string {
	return []string{l.Name, l.Location}
}

type Bank struct {
	ID   string  `json:"_id"`
	Bank string  `json:"bank"`
	ROI  float64 `json:"ROI"`
	File string  `json:"file"`
}

func (b Bank) RecordID() string { return b.ID }

func (b Bank) SearchFields() []string {
	fields := []string{b.Bank}
	if b.ROI != 0 {
		fields = append(fields, strconv.FormatFloat(b.ROI, 'f', -1, 64))
	}
	return fields
}

type Location struct {
	ID       string `json:"_id"`
	Location string `json:"location"`
}

func (l Location) RecordID() string { return l.ID }

func (l Location) SearchFields() []string {
	return []string{l.Location}
}

type Customer struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobile_no"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (c Customer) CreatedTime() (time.Time, bool) { return parseCreated(c.CreatedAt) }

func (c Customer) RecordID() string { return c.ID }

func (c Customer) SearchFields() []string {
	return []string{c.Name, c.Email, c.MobileNo, c.Location, c.Status}
}

// DecodeRecords decodes a JSON array of the collection's row type.
func DecodeRecords(c Collection, data []byte) ([]Record, error) {
	switch c {
	case Properties, Compare:
		return decodeAs[Property](data)
	case Agents:
		return decodeAs[Agent](data)
	case Leads:
		return decodeAs[Lead](data)
	case Banks:
		return decodeAs[Bank](data)
	case Locations:
		return decodeAs[Location](data)
	case Customers:
		return decodeAs[Customer](data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
}

func decodeAs[T Record](data []byte) ([]Record, error) {
	var rows []T
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, err
		}
	}
	return ToRecords(rows), nil
}

func ToRecords[T Record](rows []T) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

type PageMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PageResult struct {
	Items      []Record `json:"items"`
	Pagination PageMeta `json:"pagination"`
}
