package order

import (
	"context"
	"fmt"
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/domain/inventory"
	"bizstock/pkg/logger"
)

// Service provides business operations for order documents.
// Product sufficiency is checked against locked balances inside the
// transaction that applies the movements.
type Service struct {
	repo      Repository
	customers customer.Repository
	products  product.Repository
	applier   *inventory.Applier
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Order]
}

// NewService creates a new order service.
func NewService(
	repo Repository,
	customers customer.Repository,
	products product.Repository,
	applier *inventory.Applier,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		products:  products,
		applier:   applier,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Order](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Order] {
	return s.hooks
}

// Create saves a new order and debits product stock per line.
func (s *Service) Create(ctx context.Context, doc *Order) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := s.validate(ctx, doc); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		deltas := inventory.OrderCreate(doc.LedgerLines())
		if err := s.ensureSufficient(ctx, deltas); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, doc.ID, doc.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
		}
		return s.applier.Apply(ctx, deltas)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "order created", "id", doc.ID, "code", doc.Code)
	return nil
}

// GetByID retrieves an order with its lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
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

// Update edits an order. Every old line is restored to product stock
// before every new line is deducted.
func (s *Service) Update(ctx context.Context, doc *Order) error {
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
		deltas := inventory.OrderEdit(old.LedgerLines(), doc.LedgerLines())
		if err := s.ensureSufficient(ctx, deltas); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveDetails(ctx, doc.ID, doc.Details); err != nil {
			return fmt.Errorf("save details: %w", err)
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

// Delete removes an order and its lines. Shipped products are not
// returned to stock.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.applier.Apply(ctx, inventory.OrderDelete()); err != nil {
			return err
		}
		return s.repo.Delete(ctx, docID)
	})
}

// Find retrieves orders matching the filter.
func (s *Service) Find(ctx context.Context, filter Filter) ([]*Order, error) {
	return s.repo.Find(ctx, filter)
}

// Dates returns the distinct business dates of all orders.
func (s *Service) Dates(ctx context.Context) ([]time.Time, error) {
	return s.repo.ListDates(ctx)
}

// ensureSufficient fails with a field error when the order would
// overdraw any product. The caller's transaction rolls back on return.
func (s *Service) ensureSufficient(ctx context.Context, deltas []inventory.Delta) error {
	shortage, err := s.applier.CheckSufficiency(ctx, deltas)
	if err != nil {
		return err
	}
	if shortage != nil {
		fields := validation.New()
		fields.Add("OrderDetailDtos", "Insufficient product stock")
		return fields.Err()
	}
	return nil
}

// validate collects every field failure for the request into one error.
func (s *Service) validate(ctx context.Context, doc *Order) error {
	fields := validation.New()

	if doc.Code == "" {
		fields.Add("Code", "Code is required")
	} else if inUse, err := s.repo.CodeInUse(ctx, doc.Code, doc.ID); err != nil {
		return err
	} else if inUse {
		fields.Add("Code", "Code already exists")
	}

	if id.IsNil(doc.CustomerID) {
		fields.Add("CustomerId", "Customer is required")
	} else if exists, err := s.customers.Exists(ctx, doc.CustomerID); err != nil {
		return err
	} else if !exists {
		fields.Add("CustomerId", "Customer does not exist")
	}

	if doc.Date.IsZero() {
		fields.Add("OrderDate", "Order date is required")
	} else if doc.Date.After(time.Now()) {
		fields.Add("OrderDate", "Order date cannot be in the future")
	}

	if len(doc.Details) == 0 {
		fields.Add("OrderDetailDtos", "At least one product is required")
	}
	for _, d := range doc.Details {
		if id.IsNil(d.ProductID) {
			fields.Add("ProductId", "Product is required")
			continue
		}
		exists, err := s.products.Exists(ctx, d.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			fields.Add("ProductId", "Product does not exist")
		}
		if !d.Quantity.IsPositive() {
			fields.Add("Quantity", "Quantity must be greater than zero")
		}
	}

	return fields.Err()
}
