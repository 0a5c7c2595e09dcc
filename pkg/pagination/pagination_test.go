package pagination_test

import (
	"encoding/json"
	"net/url"
	"reflect"
	"testing"

	"becsus/pkg/pagination"
	"becsus/pkg/query"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values use defaults", 0, 0, 1, 20},
		{"negative page clamps to one", -5, 10, 1, 10},
		{"page size above max clamps", 1, 500, 1, 100},
		{"valid values untouched", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig())

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 20}
	if got := req.Offset(); got != 40 {
		t.Errorf("Offset = %d, want 40", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	t.Run("parses all parameters", func(t *testing.T) {
		values := url.Values{}
		values.Set("page", "2")
		values.Set("page_size", "10")
		values.Set("search", "nyaklánc")
		values.Set("sort", "-created_at")

		req := pagination.PageRequestFromQuery(values, testConfig())

		if req.Page != 2 || req.PageSize != 10 {
			t.Errorf("page = %d, size = %d, want 2/10", req.Page, req.PageSize)
		}
		if req.Search == nil || *req.Search != "nyaklánc" {
			t.Errorf("Search = %v, want nyaklánc", req.Search)
		}
		want := pagination.SortFields{{Field: "created_at", Descending: true}}
		if !reflect.DeepEqual(req.Sort, want) {
			t.Errorf("Sort = %v, want %v", req.Sort, want)
		}
	})

	t.Run("empty query normalizes to defaults", func(t *testing.T) {
		req := pagination.PageRequestFromQuery(url.Values{}, testConfig())

		if req.Page != 1 || req.PageSize != 20 {
			t.Errorf("page = %d, size = %d, want 1/20", req.Page, req.PageSize)
		}
		if req.Search != nil {
			t.Errorf("Search = %v, want nil", req.Search)
		}
	})
}

func TestSortFieldsUnmarshal(t *testing.T) {
	t.Run("comma-separated string", func(t *testing.T) {
		var fields pagination.SortFields
		if err := json.Unmarshal([]byte(`"title,-price"`), &fields); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}

		want := pagination.SortFields{
			{Field: "title"},
			{Field: "price", Descending: true},
		}
		if !reflect.DeepEqual(fields, want) {
			t.Errorf("fields = %v, want %v", fields, want)
		}
	})

	t.Run("object array", func(t *testing.T) {
		var fields pagination.SortFields
		payload := `[{"Field":"title","Descending":false},{"Field":"price","Descending":true}]`
		if err := json.Unmarshal([]byte(payload), &fields); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}

		if len(fields) != 2 || fields[1].Field != "price" || !fields[1].Descending {
			t.Errorf("fields = %v", fields)
		}
	})

	t.Run("invalid payload fails", func(t *testing.T) {
		var fields pagination.SortFields
		if err := json.Unmarshal([]byte(`42`), &fields); err == nil {
			t.Error("unmarshal error = nil, want failure")
		}
	})
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 100, 20, 5},
		{"partial last page", 101, 20, 6},
		{"empty result keeps one page", 0, 20, 1},
		{"single item", 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}

	t.Run("nil data becomes empty slice", func(t *testing.T) {
		result := pagination.NewPageResult[query.SortField](nil, 0, 1, 20)
		if result.Data == nil {
			t.Error("Data = nil, want empty slice")
		}
	})
}
