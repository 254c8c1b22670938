package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/domain/documents/purchase"
	"bizstock/internal/infrastructure/http/v1/dto"
	"bizstock/pkg/pagination"
)

// PurchaseHandler handles purchase document endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, service: service}
}

// List handles GET /purchases - paged list with supplier, material and
// date filters.
func (h *PurchaseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := purchase.Filter{Search: c.Query("searchText")}

	if v := c.Query("supplierId"); v != "" {
		if supplierID, err := id.Parse(v); err == nil {
			filter.SupplierID = &supplierID
		}
	}
	if v := c.Query("materialId"); v != "" {
		if materialID, err := id.Parse(v); err == nil {
			filter.MaterialID = &materialID
		}
	}
	filter.Date = h.ParseDateQuery(c, "purchaseDate")

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

// Get handles GET /purchases/:id - purchase with detail lines.
// A missing record answers 200 with a zero-value body.
func (h *PurchaseHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	zero := &purchase.Purchase{Details: make([]purchase.Detail, 0)}

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, zero)
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusOK, zero)
			return
		}
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// Create handles POST /purchases/create - saves the document and
// credits material stock in one transaction.
func (h *PurchaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseRequest
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

// Patch handles PATCH /purchases/patch - reverses the old stock effect
// and applies the new one in one transaction.
func (h *PurchaseHandler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdatePurchaseRequest
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

// Delete handles DELETE /purchases/delete/:id.
// Stock stays as received; only the document goes away.
func (h *PurchaseHandler) Delete(c *gin.Context) {
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

// Dates handles GET /purchases/getpurchasedates - one entry per
// document, newest first.
func (h *PurchaseHandler) Dates(c *gin.Context) {
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
