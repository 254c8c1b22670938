package material

import (
	"context"

	"bizstock/internal/core/id"
	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/category"
)

// Service provides business logic for the Material catalog.
type Service struct {
	*domain.CatalogService[*Material]
	repo       Repository
	categories category.Repository
}

// NewService creates a new Material service.
func NewService(repo Repository, categories category.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Material]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "material",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		categories:     categories,
	}

	base.Hooks().OnBeforeCreate(svc.validate)
	base.Hooks().OnBeforeUpdate(svc.validateUpdate)

	return svc
}

// Find retrieves materials matching the filter.
func (s *Service) Find(ctx context.Context, filter Filter) ([]*Material, error) {
	return s.repo.Find(ctx, filter)
}

// validate collects every field failure for the request into one error.
// Stock quantity is not validated here: it is owned by documents, never
// set directly through the catalog.
func (s *Service) validate(ctx context.Context, item *Material) error {
	fields := validation.New()

	if item.Code == "" {
		fields.Add("Code", "Code is required")
	} else if inUse, err := s.repo.ValueInUse(ctx, "code", item.Code, item.ID); err != nil {
		return err
	} else if inUse {
		fields.Add("Code", "Code already exists")
	}

	if item.Name == "" {
		fields.Add("Name", "Name is required")
	} else if inUse, err := s.repo.ValueInUse(ctx, "name", item.Name, item.ID); err != nil {
		return err
	} else if inUse {
		fields.Add("Name", "Name already exists")
	}

	if id.IsNil(item.CategoryID) {
		fields.Add("CategoryId", "Category is required")
	} else if exists, err := s.categories.Exists(ctx, item.CategoryID); err != nil {
		return err
	} else if !exists {
		fields.Add("CategoryId", "Category does not exist")
	}

	return fields.Err()
}

// validateUpdate ensures the record still exists and keeps the stored
// stock balance: edits never overwrite the document-driven quantity.
func (s *Service) validateUpdate(ctx context.Context, item *Material) error {
	stored, err := s.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	item.Quantity = stored.Quantity
	return s.validate(ctx, item)
}
