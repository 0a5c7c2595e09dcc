package listings_test

import (
	"errors"
	"strings"
	"testing"

	"becsus/internal/listings"
)

func validCreate() listings.CreateCommand {
	return listings.CreateCommand{
		Title:       "Arany karikagyűrű",
		Category:    listings.CategoryJewelry,
		Price:       150000,
		Description: "14 karátos arany, kiváló állapotban.",
		Photos:      []string{"https://cdn.example.com/photos/listings/1.jpg"},
	}
}

func TestCreateCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*listings.CreateCommand)
		wantErr bool
	}{
		{"valid", func(c *listings.CreateCommand) {}, false},
		{"empty title", func(c *listings.CreateCommand) { c.Title = "" }, true},
		{"title too long", func(c *listings.CreateCommand) { c.Title = strings.Repeat("a", 201) }, true},
		{"title at limit", func(c *listings.CreateCommand) { c.Title = strings.Repeat("a", 200) }, false},
		{"invalid category", func(c *listings.CreateCommand) { c.Category = "boats" }, true},
		{"zero price", func(c *listings.CreateCommand) { c.Price = 0 }, true},
		{"negative price", func(c *listings.CreateCommand) { c.Price = -5 }, true},
		{"price above limit", func(c *listings.CreateCommand) { c.Price = 10_000_001 }, true},
		{"price at limit", func(c *listings.CreateCommand) { c.Price = 10_000_000 }, false},
		{"description too long", func(c *listings.CreateCommand) { c.Description = strings.Repeat("x", 5001) }, true},
		{"empty description allowed", func(c *listings.CreateCommand) { c.Description = "" }, false},
		{"too many photos", func(c *listings.CreateCommand) { c.Photos = make([]string, 21) }, true},
		{"twenty photos allowed", func(c *listings.CreateCommand) { c.Photos = make([]string, 20) }, false},
		{"invalid status", func(c *listings.CreateCommand) { c.Status = "archived" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreate()
			tt.mutate(&cmd)

			err := cmd.Validate()
			if tt.wantErr {
				if !errors.Is(err, listings.ErrInvalidListing) {
					t.Errorf("error = %v, want ErrInvalidListing", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate error: %v", err)
			}
		})
	}
}

func TestCreateCommandDefaultsStatus(t *testing.T) {
	cmd := validCreate()
	cmd.Status = ""

	if err := cmd.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if cmd.Status != listings.StatusDraft {
		t.Errorf("Status = %q, want draft", cmd.Status)
	}
}

func TestStatusValid(t *testing.T) {
	valid := []listings.Status{
		listings.StatusDraft,
		listings.StatusActive,
		listings.StatusReserved,
		listings.StatusSold,
		listings.StatusInactive,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Status %q reported invalid", s)
		}
	}

	if listings.Status("published").Valid() {
		t.Error("unrecognized status reported valid")
	}
}
