package product

import (
	"context"
	"fmt"

	"bizstock/internal/core/id"
	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/category"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/pkg/logger"
)

// Service provides business logic for the Product catalog.
// Unlike the flat catalogs, products save their bill of materials in the
// same transaction as the head record, so CRUD is implemented here
// instead of the generic catalog service.
type Service struct {
	repo       Repository
	categories category.Repository
	materials  material.Repository
	txManager  tx.Manager
	hooks      *domain.HookRegistry[*Product]
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	categories category.Repository,
	materials material.Repository,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		materials:  materials,
		txManager:  txManager,
		hooks:      domain.NewHookRegistry[*Product](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Product] {
	return s.hooks
}

// Create creates a product with its bill of materials.
func (s *Service) Create(ctx context.Context, item *Product) error {
	if err := s.hooks.RunBeforeCreate(ctx, item); err != nil {
		return err
	}

	if err := s.validate(ctx, item); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, item); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, item.ID, item.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, item); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "product created", "id", item.ID, "code", item.Code)
	return nil
}

// GetByID retrieves a product with its bill of materials.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	item, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}
	item.Details = details

	return item, nil
}

// GetByCode retrieves a product with its bill of materials.
func (s *Service) GetByCode(ctx context.Context, code string) (*Product, error) {
	item, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}
	item.Details = details

	return item, nil
}

// Update updates a product and replaces its bill of materials.
// The stored stock balance is kept: edits never overwrite the
// document-driven quantity.
func (s *Service) Update(ctx context.Context, item *Product) error {
	if err := s.hooks.RunBeforeUpdate(ctx, item); err != nil {
		return err
	}

	stored, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	item.Quantity = stored.Quantity

	if err := s.validate(ctx, item); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, item); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, item.ID, item.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
		}
		return nil
	})
}

// Delete removes a product and its bill of materials. Products referenced
// by order lines fail with a conflict.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	item, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, item); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, productID)
	})
}

// Find retrieves products matching the filter.
func (s *Service) Find(ctx context.Context, filter Filter) ([]*Product, error) {
	return s.repo.Find(ctx, filter)
}

// List retrieves products with common filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*Product, error) {
	return s.repo.List(ctx, filter)
}

// BOM returns the bill of materials as ledger lines for a product.
func (s *Service) BOM(ctx context.Context, productID id.ID) ([]Detail, error) {
	return s.repo.GetDetails(ctx, productID)
}

// validate collects every field failure for the request into one error.
func (s *Service) validate(ctx context.Context, item *Product) error {
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

	if len(item.Details) == 0 {
		fields.Add("ProductDetailDtos", "At least one material is required")
	}
	for _, d := range item.Details {
		if id.IsNil(d.MaterialID) {
			fields.Add("ProductDetailDtos", "Material is required")
			continue
		}
		exists, err := s.materials.Exists(ctx, d.MaterialID)
		if err != nil {
			return err
		}
		if !exists {
			fields.Add("ProductDetailDtos", "Material does not exist")
		}
		if !d.Quantity.IsPositive() {
			fields.Add("Quantity", "Quantity must be greater than zero")
		}
	}

	return fields.Err()
}
