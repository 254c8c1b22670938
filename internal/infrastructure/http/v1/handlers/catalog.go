package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/domain"
	"bizstock/pkg/pagination"
)

// CatalogHandler provides generic HTTP handlers for catalog entities.
// Responses serialize the entity itself; requests go through DTOs.
type CatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    *domain.CatalogService[T]
	entityName string

	mapCreateDTO   func(dto CreateDTO) T
	applyUpdateDTO func(dto UpdateDTO, existing T) T
	updateID       func(dto UpdateDTO) string
	zero           func() T

	// find, when set, replaces the default list query so entity-specific
	// filters can apply
	find func(ctx context.Context, c *gin.Context) ([]T, error)
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	Service        *domain.CatalogService[T]
	EntityName     string
	MapCreateDTO   func(dto CreateDTO) T
	ApplyUpdateDTO func(dto UpdateDTO, existing T) T
	UpdateID       func(dto UpdateDTO) string
	Zero           func() T
	Find           func(ctx context.Context, c *gin.Context) ([]T, error)
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO],
) *CatalogHandler[T, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:    base,
		service:        cfg.Service,
		entityName:     cfg.EntityName,
		mapCreateDTO:   cfg.MapCreateDTO,
		applyUpdateDTO: cfg.ApplyUpdateDTO,
		updateID:       cfg.UpdateID,
		zero:           cfg.Zero,
		find:           cfg.Find,
	}
}

// List handles GET /{entity} - paged list with search.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []T
		err   error
	)
	if h.find != nil {
		items, err = h.find(ctx, c)
	} else {
		items, err = h.service.List(ctx, domain.ListFilter{Search: c.Query("searchText")})
	}
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

// GetAll handles GET /{entity}/getall - full unpaginated list for dropdowns.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.List(ctx, domain.ListFilter{})
	if err != nil {
		h.Error(c, err)
		return
	}
	if items == nil {
		items = make([]T, 0)
	}

	h.OK(c, items)
}

// Get handles GET /{entity}/:id - single entity.
// A missing record answers 200 with a zero-value body; the client
// renders an empty form instead of an error page.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.OK(c, h.zero())
		return
	}

	item, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		if apperror.IsNotFound(err) {
			h.OK(c, h.zero())
			return
		}
		h.Error(c, err)
		return
	}

	h.OK(c, item)
}

// Create handles POST /{entity}/create - create new entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	item := h.mapCreateDTO(req)

	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, item)
}

// Patch handles PATCH /{entity}/patch - update existing entity.
// The record is addressed by the id carried in the body.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	entityID, err := id.Parse(h.updateID(req))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.applyUpdateDTO(req, existing)

	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /{entity}/delete/:id - remove entity.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
