package production

import (
	"context"
	"fmt"
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/domain/inventory"
	"bizstock/pkg/logger"
)

// Service provides business operations for production documents.
// Material sufficiency is checked against locked balances inside the
// transaction that applies the movements, so concurrent runs cannot
// both pass on the same stock.
type Service struct {
	repo      Repository
	products  product.Repository
	applier   *inventory.Applier
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Production]
}

// NewService creates a new production service.
func NewService(
	repo Repository,
	products product.Repository,
	applier *inventory.Applier,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		applier:   applier,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Production](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Production] {
	return s.hooks
}

// Create saves a new production run: materials are consumed per the
// product's bill of materials, then product stock is credited.
func (s *Service) Create(ctx context.Context, doc *Production) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := s.validate(ctx, doc); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		bom, err := s.bom(ctx, doc.ProductID)
		if err != nil {
			return err
		}

		deltas := inventory.ProductionCreate(doc.ProductID, doc.Quantity, bom)
		if err := s.ensureSufficient(ctx, deltas); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		return s.applier.Apply(ctx, deltas)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "production created", "id", doc.ID, "code", doc.Code)
	return nil
}

// GetByID retrieves a production run.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Production, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update edits a production run. The old run is fully reversed first:
// consumed materials return to stock and the produced quantity is
// debited, then the new run is applied, even when the product changed.
func (s *Service) Update(ctx context.Context, doc *Production) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	old, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		oldBOM, err := s.bom(ctx, old.ProductID)
		if err != nil {
			return err
		}
		newBOM, err := s.bom(ctx, doc.ProductID)
		if err != nil {
			return err
		}

		deltas := inventory.ProductionEdit(
			old.ProductID, old.Quantity, oldBOM,
			doc.ProductID, doc.Quantity, newBOM,
		)
		if err := s.ensureSufficient(ctx, deltas); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		return s.applier.Apply(ctx, deltas)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// Delete removes a production run. Produced stock and consumed materials
// stay as they are.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.applier.Apply(ctx, inventory.ProductionDelete()); err != nil {
			return err
		}
		return s.repo.Delete(ctx, docID)
	})
}

// Find retrieves productions matching the filter.
func (s *Service) Find(ctx context.Context, filter Filter) ([]*Production, error) {
	return s.repo.Find(ctx, filter)
}

// Dates returns the distinct business dates of all productions.
func (s *Service) Dates(ctx context.Context) ([]time.Time, error) {
	return s.repo.ListDates(ctx)
}

// bom loads the product's bill of materials as ledger lines.
func (s *Service) bom(ctx context.Context, productID id.ID) ([]inventory.BOMLine, error) {
	details, err := s.products.GetDetails(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get bill of materials: %w", err)
	}

	bom := make([]inventory.BOMLine, 0, len(details))
	for _, d := range details {
		bom = append(bom, inventory.BOMLine{MaterialID: d.MaterialID, QtyPerUnit: d.Quantity})
	}
	return bom, nil
}

// ensureSufficient fails with a field error on the first material the
// run would overdraw. The caller's transaction rolls back on return.
func (s *Service) ensureSufficient(ctx context.Context, deltas []inventory.Delta) error {
	shortage, err := s.applier.CheckSufficiency(ctx, deltas)
	if err != nil {
		return err
	}
	if shortage != nil {
		fields := validation.New()
		fields.Add("ProductId", "Insufficient material stock")
		return fields.Err()
	}
	return nil
}

// validate collects every field failure for the request into one error.
func (s *Service) validate(ctx context.Context, doc *Production) error {
	fields := validation.New()

	if doc.Code == "" {
		fields.Add("Code", "Code is required")
	} else if inUse, err := s.repo.CodeInUse(ctx, doc.Code, doc.ID); err != nil {
		return err
	} else if inUse {
		fields.Add("Code", "Code already exists")
	}

	if id.IsNil(doc.ProductID) {
		fields.Add("ProductId", "Product is required")
	} else if exists, err := s.products.Exists(ctx, doc.ProductID); err != nil {
		return err
	} else if !exists {
		fields.Add("ProductId", "Product does not exist")
	}

	if !doc.Quantity.IsPositive() {
		fields.Add("Quantity", "Quantity must be greater than zero")
	}

	if doc.Date.IsZero() {
		fields.Add("ProductionDate", "Production date is required")
	} else if doc.Date.After(time.Now()) {
		fields.Add("ProductionDate", "Production date cannot be in the future")
	}

	return fields.Err()
}
