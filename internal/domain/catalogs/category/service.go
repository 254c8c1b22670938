package category

import (
	"context"

	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
)

// Service provides business logic for the Category catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "category",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.validate)
	base.Hooks().OnBeforeUpdate(svc.validateUpdate)

	return svc
}

// validate collects every field failure for the request into one error.
func (s *Service) validate(ctx context.Context, item *Category) error {
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

	return fields.Err()
}

// validateUpdate ensures the record still exists before field validation.
func (s *Service) validateUpdate(ctx context.Context, item *Category) error {
	if _, err := s.GetByID(ctx, item.ID); err != nil {
		return err
	}
	return s.validate(ctx, item)
}
