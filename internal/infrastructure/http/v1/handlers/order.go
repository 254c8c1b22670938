package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/domain/documents/order"
	"bizstock/internal/infrastructure/http/v1/dto"
	"bizstock/pkg/pagination"
)

// OrderHandler handles order document endpoints.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// List handles GET /orders - paged list with customer, product and
// date filters.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := order.Filter{Search: c.Query("searchText")}

	if v := c.Query("customerId"); v != "" {
		if customerID, err := id.Parse(v); err == nil {
			filter.CustomerID = &customerID
		}
	}
	if v := c.Query("productId"); v != "" {
		if productID, err := id.Parse(v); err == nil {
			filter.ProductID = &productID
		}
	}
	filter.Date = h.ParseDateQuery(c, "orderDate")

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

// Get handles GET /orders/:id - order with detail lines.
// A missing record answers 200 with a zero-value body.
func (h *OrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	zero := &order.Order{Details: make([]order.Detail, 0)}

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

// Create handles POST /orders/create - saves the document and debits
// product stock in one transaction.
func (h *OrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateOrderRequest
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

// Patch handles PATCH /orders/patch - restores the old stock effect
// and applies the new one in one transaction.
func (h *OrderHandler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateOrderRequest
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

// Delete handles DELETE /orders/delete/:id.
// Stock stays as shipped; only the document goes away.
func (h *OrderHandler) Delete(c *gin.Context) {
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

// Dates handles GET /orders/getorderdates - distinct dates, newest first.
func (h *OrderHandler) Dates(c *gin.Context) {
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
