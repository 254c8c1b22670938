package purchase

import (
	"context"
	"fmt"
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/domain/inventory"
	"bizstock/pkg/logger"
)

// Service provides business operations for purchase documents.
// Stock movements are applied in the same transaction that saves the
// document, so a failure anywhere leaves both untouched.
type Service struct {
	repo      Repository
	suppliers supplier.Repository
	materials material.Repository
	applier   *inventory.Applier
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Purchase]
}

// NewService creates a new purchase service.
func NewService(
	repo Repository,
	suppliers supplier.Repository,
	materials material.Repository,
	applier *inventory.Applier,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		suppliers: suppliers,
		materials: materials,
		applier:   applier,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Purchase](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Purchase] {
	return s.hooks
}

// Create saves a new purchase and credits material stock per line.
func (s *Service) Create(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := s.validate(ctx, doc); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, doc.ID, doc.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
		}
		return s.applier.Apply(ctx, inventory.PurchaseCreate(doc.LedgerLines()))
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase created", "id", doc.ID, "code", doc.Code)
	return nil
}

// GetByID retrieves a purchase with its lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}
	doc.Details = details

	return doc, nil
}

// Update edits a purchase. Every old line is reversed off material stock
// before every new line is applied, so a material present in both nets
// out to the difference.
func (s *Service) Update(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	old, err := s.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, doc.ID, doc.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
		}
		return s.applier.Apply(ctx, inventory.PurchaseEdit(old.LedgerLines(), doc.LedgerLines()))
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// Delete removes a purchase and its lines. Received materials stay on
// hand; only the paper trail goes away.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.applier.Apply(ctx, inventory.PurchaseDelete()); err != nil {
			return err
		}
		return s.repo.Delete(ctx, docID)
	})
}

// Find retrieves purchases matching the filter.
func (s *Service) Find(ctx context.Context, filter Filter) ([]*Purchase, error) {
	return s.repo.Find(ctx, filter)
}

// Dates returns the business dates of all purchases.
func (s *Service) Dates(ctx context.Context) ([]time.Time, error) {
	return s.repo.ListDates(ctx)
}

// validate collects every field failure for the request into one error.
func (s *Service) validate(ctx context.Context, doc *Purchase) error {
	fields := validation.New()

	if doc.Code == "" {
		fields.Add("Code", "Code is required")
	} else if inUse, err := s.repo.CodeInUse(ctx, doc.Code, doc.ID); err != nil {
		return err
	} else if inUse {
		fields.Add("Code", "Code already exists")
	}

	if id.IsNil(doc.SupplierID) {
		fields.Add("SupplierId", "Supplier is required")
	} else if exists, err := s.suppliers.Exists(ctx, doc.SupplierID); err != nil {
		return err
	} else if !exists {
		fields.Add("SupplierId", "Supplier does not exist")
	}

	if doc.Date.IsZero() {
		fields.Add("PurchaseDate", "Purchase date is required")
	} else if doc.Date.After(time.Now()) {
		fields.Add("PurchaseDate", "Purchase date cannot be in the future")
	}

	for _, d := range doc.Details {
		if id.IsNil(d.MaterialID) {
			fields.Add("PurchaseDetailDtos", "Material is required")
			continue
		}
		exists, err := s.materials.Exists(ctx, d.MaterialID)
		if err != nil {
			return err
		}
		if !exists {
			fields.Add("PurchaseDetailDtos", "Material does not exist")
		}
		if !d.Quantity.IsPositive() {
			fields.Add("Quantity", "Quantity must be greater than zero")
		}
	}

	return fields.Err()
}
