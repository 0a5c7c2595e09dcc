package query_test

import (
	"reflect"
	"testing"

	"becsus/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "listings", "l").
		Project("id", "ID").
		Project("title", "Title").
		Project("price", "Price").
		Project("status", "Status")
}

func TestBuild(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
	})

	t.Run("equality condition", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).
			WhereEquals("Status", "active").
			Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l WHERE l.status = $1"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if !reflect.DeepEqual(args, []any{"active"}) {
			t.Errorf("args = %v, want [active]", args)
		}
	})

	t.Run("nil equality is skipped", func(t *testing.T) {
		var status *string
		sql, args := query.NewBuilder(testProjection()).
			WhereEquals("Status", status).
			Build()

		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
	})

	t.Run("search across fields numbers params sequentially", func(t *testing.T) {
		search := "gyűrű"
		sql, args := query.NewBuilder(testProjection()).
			WhereEquals("Status", "active").
			WhereSearch(&search, "Title", "Status").
			Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l" +
			" WHERE l.status = $1 AND (l.title ILIKE $2 OR l.status ILIKE $3)"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if !reflect.DeepEqual(args, []any{"active", "%gyűrű%", "%gyűrű%"}) {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("default sort applied", func(t *testing.T) {
		sql, _ := query.NewBuilder(
			testProjection(),
			query.SortField{Field: "Title", Descending: false},
		).Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l ORDER BY l.title ASC"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
	})

	t.Run("explicit sort overrides default", func(t *testing.T) {
		sql, _ := query.NewBuilder(
			testProjection(),
			query.SortField{Field: "Title"},
		).OrderByFields([]query.SortField{
			{Field: "Price", Descending: true},
		}).Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l ORDER BY l.price DESC"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
	})
}

func TestBuildCount(t *testing.T) {
	status := "active"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.listings l WHERE l.status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want 1 arg", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(
		testProjection(),
		query.SortField{Field: "Title"},
	).BuildPage(3, 20)

	want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l ORDER BY l.title ASC LIMIT 20 OFFSET 40"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc-123")

	want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l WHERE l.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"abc-123"}) {
		t.Errorf("args = %v", args)
	}
}

func TestWhereContains(t *testing.T) {
	t.Run("adds ilike condition", func(t *testing.T) {
		title := "arany"
		sql, args := query.NewBuilder(testProjection()).
			WhereContains("Title", &title).
			Build()

		want := "SELECT l.id, l.title, l.price, l.status FROM public.listings l WHERE l.title ILIKE $1"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if !reflect.DeepEqual(args, []any{"%arany%"}) {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("empty value is skipped", func(t *testing.T) {
		empty := ""
		_, args := query.NewBuilder(testProjection()).
			WhereContains("Title", &empty).
			Build()

		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
	})
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "title", []query.SortField{{Field: "title"}}},
		{"single descending", "-price", []query.SortField{{Field: "price", Descending: true}}},
		{
			"mixed with whitespace",
			"title, -created_at",
			[]query.SortField{
				{Field: "title"},
				{Field: "created_at", Descending: true},
			},
		},
		{"blank segments dropped", "title,,", []query.SortField{{Field: "title"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnPassthrough(t *testing.T) {
	p := testProjection()
	if got := p.Column("unmapped"); got != "unmapped" {
		t.Errorf("Column = %q, want passthrough", got)
	}
}
