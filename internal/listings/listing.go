// Package listings implements the storefront catalog: appraised valuables
// offered for sale, managed through the admin dashboard.
package listings

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies a listing.
type Category string

const (
	CategoryJewelry      Category = "jewelry"
	CategoryWatches      Category = "watches"
	CategoryArt          Category = "art"
	CategoryFurniture    Category = "furniture"
	CategoryCollectibles Category = "collectibles"
	CategoryAntiques     Category = "antiques"
	CategoryFashion      Category = "fashion"
	CategoryOther        Category = "other"
)

// Valid reports whether the category is a recognized value.
func (c Category) Valid() bool {
	switch c {
	case CategoryJewelry, CategoryWatches, CategoryArt, CategoryFurniture,
		CategoryCollectibles, CategoryAntiques, CategoryFashion, CategoryOther:
		return true
	}
	return false
}

// Status tracks a listing through its sales lifecycle.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
	StatusSold     Status = "sold"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is a recognized value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusReserved, StatusSold, StatusInactive:
		return true
	}
	return false
}

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxPrice             = 10_000_000
	maxPhotos            = 20
)

// Listing is a single catalog entry. Price is in whole HUF.
type Listing struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand holds the fields for a new listing. Status defaults to draft
// when empty.
type CreateCommand struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Status      Status   `json:"status"`
}

// Validate enforces field constraints for listing creation.
func (c *CreateCommand) Validate() error {
	if c.Status == "" {
		c.Status = StatusDraft
	}
	return validateFields(c.Title, c.Category, c.Price, c.Description, c.Photos, c.Status)
}

// UpdateCommand holds the replacement fields for an existing listing.
type UpdateCommand struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Status      Status   `json:"status"`
}

// Validate enforces field constraints for listing updates.
func (c *UpdateCommand) Validate() error {
	return validateFields(c.Title, c.Category, c.Price, c.Description, c.Photos, c.Status)
}

func validateFields(
	title string,
	category Category,
	price int64,
	description string,
	photos []string,
	status Status,
) error {
	if title == "" || len(title) > maxTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidListing, maxTitleLength)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unrecognized category %q", ErrInvalidListing, category)
	}
	if price <= 0 || price > maxPrice {
		return fmt.Errorf("%w: price must be between 1 and %d", ErrInvalidListing, maxPrice)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidListing, maxDescriptionLength)
	}
	if len(photos) > maxPhotos {
		return fmt.Errorf("%w: at most %d photos allowed", ErrInvalidListing, maxPhotos)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unrecognized status %q", ErrInvalidListing, status)
	}
	return nil
}
