package customer

import (
	"context"
	"net/mail"

	"bizstock/internal/core/tx"
	"bizstock/internal/core/validation"
	"bizstock/internal/domain"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "customer",
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
func (s *Service) validate(ctx context.Context, item *Customer) error {
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

	if email := item.EmailValue(); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fields.Add("Email", "Email is invalid")
		} else if inUse, err := s.repo.ValueInUse(ctx, "email", email, item.ID); err != nil {
			return err
		} else if inUse {
			fields.Add("Email", "Email already exists")
		}
	}

	return fields.Err()
}

// validateUpdate ensures the record still exists before field validation.
func (s *Service) validateUpdate(ctx context.Context, item *Customer) error {
	if _, err := s.GetByID(ctx, item.ID); err != nil {
		return err
	}
	return s.validate(ctx, item)
}
