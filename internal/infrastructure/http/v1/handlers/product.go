package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/infrastructure/http/v1/dto"
	"bizstock/pkg/pagination"
)

// ProductHandler handles product endpoints. Products do not fit the
// generic catalog handler: the bill of materials saves together with
// the head record and the list supports the low-stock filter.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /products - paged list with search, category and
// low-stock filters.
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := product.Filter{Search: c.Query("searchText")}

	if v := c.Query("categoryId"); v != "" {
		if categoryID, err := id.Parse(v); err == nil {
			filter.CategoryID = &categoryID
		}
	}

	if v := c.Query("minimum"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			minimum := types.NewQuantityFromFloat64(f)
			filter.Minimum = &minimum
		}
	}

	items, err := h.service.Find(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	page := pagination.Paginate(items,
		h.ParseIntQuery(c, "pageIndex", 0),
		h.ParseIntQuery(c, "pageSize", 0),
	)
	h.OK(c, page)
}

// GetAll handles GET /products/getall - full list for dropdowns.
func (h *ProductHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.List(ctx, domain.ListFilter{})
	if err != nil {
		h.Error(c, err)
		return
	}
	if items == nil {
		items = make([]*product.Product, 0)
	}

	h.OK(c, items)
}

// Get handles GET /products/:id - product with its bill of materials.
// A missing record answers 200 with a zero-value body.
func (h *ProductHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	zero := &product.Product{Details: make([]product.Detail, 0)}

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, zero)
		return
	}

	item, err := h.service.GetByID(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusOK, zero)
			return
		}
		h.Error(c, err)
		return
	}

	h.OK(c, item)
}

// Create handles POST /products/create.
func (h *ProductHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := req.ToEntity()

	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, item)
}

// Patch handles PATCH /products/patch.
func (h *ProductHandler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	productID, err := id.Parse(req.ID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	existing, err := h.service.GetByID(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(existing)

	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /products/delete/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, productID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
