package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

// CatalogHandler serves the public product catalog routes.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        limit  query     int     false  "Page size (0 = unlimited)"
// @Param        page   query     int     false  "1-based page number"
// @Param        sort   query     string  false  "price-asc | price-desc | name-asc | name-desc"
// @Success      200    {array}   domain.Product
// @Failure      503    {object}  map[string]string
// @Router       /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	return h.list(c, "")
}

// ListByCategory returns the handler for a fixed category shortcut route
// such as GET /products/footwear.
func (h *CatalogHandler) ListByCategory(category domain.Category) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.list(c, category)
	}
}

// ListBySlug handles GET /products/category/:slug, resolving the slug
// through the fixed category table.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        slug   path      string  true   "Category slug"
// @Param        limit  query     int     false  "Page size (0 = unlimited)"
// @Param        page   query     int     false  "1-based page number"
// @Param        sort   query     string  false  "price-asc | price-desc | name-asc | name-desc"
// @Success      200    {array}   domain.Product
// @Failure      400    {object}  map[string]string
// @Router       /products/category/{slug} [get]
func (h *CatalogHandler) ListBySlug(c echo.Context) error {
	category, err := domain.CategoryFromSlug(c.Param("slug"))
	if err != nil {
		return err
	}
	return h.list(c, category)
}

func (h *CatalogHandler) list(c echo.Context, category domain.Category) error {
	products, err := h.catalog.List(c.Request().Context(), category, domain.RawListParams{
		Limit: c.QueryParam("limit"),
		Page:  c.QueryParam("page"),
		Sort:  c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id (hex)"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
