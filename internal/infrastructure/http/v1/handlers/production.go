package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/domain/documents/production"
	"bizstock/internal/infrastructure/http/v1/dto"
	"bizstock/pkg/pagination"
)

// ProductionHandler handles production document endpoints.
type ProductionHandler struct {
	*BaseHandler
	service *production.Service
}

// NewProductionHandler creates a new production handler.
func NewProductionHandler(base *BaseHandler, service *production.Service) *ProductionHandler {
	return &ProductionHandler{BaseHandler: base, service: service}
}

// List handles GET /productions - paged list with product and date filters.
func (h *ProductionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := production.Filter{Search: c.Query("searchText")}

	if v := c.Query("productId"); v != "" {
		if productID, err := id.Parse(v); err == nil {
			filter.ProductID = &productID
		}
	}
	filter.Date = h.ParseDateQuery(c, "productionDate")

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

// Get handles GET /productions/:id.
// A missing record answers 200 with a zero-value body.
func (h *ProductionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, &production.Production{})
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusOK, &production.Production{})
			return
		}
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// Create handles POST /productions/create - consumes materials per the
// bill of materials and credits product stock in one transaction.
func (h *ProductionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, doc)
}

// Patch handles PATCH /productions/patch - restores the old run's
// stock effect, then applies the new one in one transaction.
func (h *ProductionHandler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateProductionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	docID, err := id.Parse(req.ID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	existing, err := h.service.GetByID(ctx, docID)
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

// Delete handles DELETE /productions/delete/:id.
// Stock stays as produced; only the document goes away.
func (h *ProductionHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Dates handles GET /productions/alldates - distinct dates, newest first.
func (h *ProductionHandler) Dates(c *gin.Context) {
	ctx := c.Request.Context()

	dates, err := h.service.Dates(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	if dates == nil {
		dates = make([]time.Time, 0)
	}

	h.OK(c, dates)
}
