package domain

import "testing"

func TestBuildListQuery_SkipPagination(t *testing.T) {
	tests := []struct {
		name     string
		limit    string
		page     string
		wantSkip int64
		wantLim  int64
	}{
		{"defaults", "", "", 0, 0},
		{"page without limit", "", "3", 0, 0},
		{"first page", "10", "1", 0, 10},
		{"second page", "10", "2", 10, 10},
		{"limit 2 page 2", "2", "2", 2, 2},
		{"invalid limit", "abc", "2", 0, 0},
		{"negative limit", "-5", "2", 0, 0},
		{"invalid page", "10", "zero", 0, 10},
		{"page below one", "10", "0", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildListQuery("", RawListParams{Limit: tt.limit, Page: tt.page})
			if q.Skip != tt.wantSkip {
				t.Fatalf("skip = %d, want %d", q.Skip, tt.wantSkip)
			}
			if q.Limit != tt.wantLim {
				t.Fatalf("limit = %d, want %d", q.Limit, tt.wantLim)
			}
		})
	}
}

func TestBuildListQuery_Sort(t *testing.T) {
	tests := []struct {
		sort      string
		wantField string
		wantOrder SortOrder
	}{
		{"price-asc", "price", SortAsc},
		{"price-desc", "price", SortDesc},
		{"name-asc", "name", SortAsc},
		{"name-desc", "name", SortDesc},
		{"", "", 0},
		{"rating-desc", "", 0},
		{"PRICE-ASC", "", 0},
	}

	for _, tt := range tests {
		q := BuildListQuery("", RawListParams{Sort: tt.sort})
		if q.SortField != tt.wantField || q.SortOrder != tt.wantOrder {
			t.Fatalf("sort %q → (%q, %d), want (%q, %d)", tt.sort, q.SortField, q.SortOrder, tt.wantField, tt.wantOrder)
		}
	}
}

func TestBuildListQuery_Deterministic(t *testing.T) {
	raw := RawListParams{Limit: "5", Page: "4", Sort: "name-desc"}
	a := BuildListQuery(CategoryFootwear, raw)
	b := BuildListQuery(CategoryFootwear, raw)
	if a != b {
		t.Fatalf("identical inputs produced different queries: %+v vs %+v", a, b)
	}
}

func TestCategoryFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want Category
	}{
		{"clothing", CategoryClothing},
		{"traditional-wear", CategoryTraditionalWear},
		{"footwear", CategoryFootwear},
		{"accessories", CategoryAccessories},
		{"Footwear", CategoryFootwear}, // slug lookup is case-insensitive
	}
	for _, tt := range tests {
		got, err := CategoryFromSlug(tt.slug)
		if err != nil {
			t.Fatalf("CategoryFromSlug(%q) error: %v", tt.slug, err)
		}
		if got != tt.want {
			t.Fatalf("CategoryFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}

	if _, err := CategoryFromSlug("electronics"); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleAdmin, RoleSuperAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Fatalf("expected unknown role to be invalid")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}
