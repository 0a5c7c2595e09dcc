package listings

import (
	"encoding/json"
	"net/url"

	"becsus/pkg/query"
	"becsus/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "listings", "l").
	Project("id", "ID").
	Project("title", "Title").
	Project("category", "Category").
	Project("price", "Price").
	Project("description", "Description").
	Project("photos", "Photos").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for listing queries.
// Nil fields are ignored; Status and Category use exact matching.
type Filters struct {
	Status   *string `json:"status,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Category", f.Category)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	return f
}

// scanListing reads a listing row. Photos are stored as a JSONB array of URLs.
func scanListing(s repository.Scanner) (Listing, error) {
	var (
		l      Listing
		photos []byte
	)

	err := s.Scan(
		&l.ID,
		&l.Title,
		&l.Category,
		&l.Price,
		&l.Description,
		&photos,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return l, err
	}

	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &l.Photos); err != nil {
			return l, err
		}
	}
	if l.Photos == nil {
		l.Photos = []string{}
	}

	return l, nil
}

func encodePhotos(photos []string) ([]byte, error) {
	if photos == nil {
		photos = []string{}
	}
	return json.Marshal(photos)
}
