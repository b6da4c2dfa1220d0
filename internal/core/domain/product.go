package domain

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidCategory  = errors.New("invalid category")
)

// Category is a product category label as stored in the catalog.
type Category string

const (
	CategoryClothing        Category = "Clothing"
	CategoryTraditionalWear Category = "Traditional Wear"
	CategoryFootwear        Category = "Footwear"
	CategoryAccessories     Category = "Accessories"
)

// categoryBySlug maps URL-safe slugs to catalog labels. The table is fixed;
// an unknown slug is a client error, never a silent empty result.
var categoryBySlug = map[string]Category{
	"clothing":         CategoryClothing,
	"traditional-wear": CategoryTraditionalWear,
	"footwear":         CategoryFootwear,
	"accessories":      CategoryAccessories,
}

// CategoryFromSlug resolves a URL slug to its catalog label.
func CategoryFromSlug(slug string) (Category, error) {
	c, ok := categoryBySlug[strings.ToLower(slug)]
	if !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Product is a catalog item. The catalog is read-only from this service's
// perspective; Extra carries whatever display fields the documents hold.
type Product struct {
	ID       string         `json:"id" bson:"_id,omitempty"`
	Name     string         `json:"name" bson:"name"`
	Category Category       `json:"category" bson:"category"`
	Price    float64        `json:"price" bson:"price"`
	Extra    map[string]any `json:"extra,omitempty" bson:",inline"`
}

// SortOrder is the direction of an explicit sort stage.
type SortOrder int

const (
	SortAsc  SortOrder = 1
	SortDesc SortOrder = -1
)

// ListQuery is the deterministic store query produced by BuildListQuery.
// A zero Limit means "no limit"; an empty SortField means featured order
// (no sort stage applied).
type ListQuery struct {
	Category  Category
	SortField string
	SortOrder SortOrder
	Skip      int64
	Limit     int64
}

// RawListParams are the untrusted query-string values of a list request.
type RawListParams struct {
	Limit string
	Page  string
	Sort  string
}

// BuildListQuery normalises raw list parameters into a ListQuery.
//
//	limit: non-negative integer; invalid or absent → 0 (unlimited)
//	page:  positive integer, minimum 1; invalid or absent → 1
//	skip:  (page-1)*limit when limit > 0, else 0
//	sort:  price-asc | price-desc | name-asc | name-desc; anything else →
//	       no sort stage
//
// The function is pure: identical inputs always yield identical queries.
func BuildListQuery(category Category, raw RawListParams) ListQuery {
	limit, err := strconv.ParseInt(raw.Limit, 10, 64)
	if err != nil || limit < 0 {
		limit = 0
	}

	page, err := strconv.ParseInt(raw.Page, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	var skip int64
	if limit > 0 {
		skip = (page - 1) * limit
	}

	q := ListQuery{Category: category, Skip: skip, Limit: limit}
	switch raw.Sort {
	case "price-asc":
		q.SortField, q.SortOrder = "price", SortAsc
	case "price-desc":
		q.SortField, q.SortOrder = "price", SortDesc
	case "name-asc":
		q.SortField, q.SortOrder = "name", SortAsc
	case "name-desc":
		q.SortField, q.SortOrder = "name", SortDesc
	}
	return q
}
