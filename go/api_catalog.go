package nurseryserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/application"
	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
)

// CatalogAPI implements the product catalog endpoints, including the legacy
// /api/plants aliases the storefront still calls.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI wires dependencies.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

type productPageResponse struct {
	Products    []cataloghttpmapper.Product `json:"products"`
	TotalPages  int                         `json:"totalPages"`
	CurrentPage int                         `json:"currentPage"`
	Total       int64                       `json:"total"`
}

type productMessageResponse struct {
	Message string                    `json:"message"`
	Product cataloghttpmapper.Product `json:"product"`
}

// Get /api/products
// Paginated catalog listing with category and search filters
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	filter := catalogports.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			respondError(c, http.StatusBadRequest, errors.New("page must be a positive integer"))
			return
		}
		filter.Page = page
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(c, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}
	page, err := api.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, productPageResponse{
		Products:    cataloghttpmapper.FromDomainProducts(page.Products),
		TotalPages:  page.TotalPages,
		CurrentPage: page.Page,
		Total:       page.Total,
	})
}

// Get /api/plants
// Unpaginated listing used by the back-office plant table
func (api *CatalogAPI) ListPlants(c *gin.Context) {
	products, err := api.service.ListAllProducts(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProducts(products))
}

// Get /api/products/:id
// Fetch a single product
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	product, err := api.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(product))
}

// Post /api/products
// Add a product to the catalog (admin)
func (api *CatalogAPI) CreateProduct(c *gin.Context) {
	var payload cataloghttpmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), cataloghttpmapper.ToDomainProduct(payload))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productMessageResponse{
		Message: "Plant added successfully",
		Product: cataloghttpmapper.FromDomainProduct(created),
	})
}

// Put /api/plants/:id
// Replace a product's attributes (admin)
func (api *CatalogAPI) UpdateProduct(c *gin.Context) {
	var payload cataloghttpmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.UpdateProduct(c.Request.Context(), c.Param("id"), cataloghttpmapper.ToDomainProduct(payload))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, productMessageResponse{
		Message: "Plant updated successfully",
		Product: cataloghttpmapper.FromDomainProduct(updated),
	})
}

// Put /api/plants/:id/status
// Flip a product between active and inactive (admin)
func (api *CatalogAPI) ToggleStatus(c *gin.Context) {
	product, err := api.service.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(product))
}

type setStockRequest struct {
	Stock *int `json:"stock"`
}

// Put /api/plants/:id/stock
// Set a product's stock level directly (admin)
func (api *CatalogAPI) SetStock(c *gin.Context) {
	var payload setStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if payload.Stock == nil {
		respondError(c, http.StatusBadRequest, errors.New("stock is required"))
		return
	}
	product, err := api.service.SetStock(c.Request.Context(), c.Param("id"), *payload.Stock)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(product))
}

// Delete /api/plants/:id
// Remove a product from the catalog (admin)
func (api *CatalogAPI) DeleteProduct(c *gin.Context) {
	if err := api.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plant deleted successfully"})
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		respondError(c, http.StatusNotFound, errors.New("plant not found"))
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
