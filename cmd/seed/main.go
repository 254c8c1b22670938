// Package main provides a CLI tool for seeding the database with demo data.
//
// The seeder goes through the domain services, not raw SQL, so every
// row passes the same validation and stock movement as API traffic.
// It is idempotent: entities are looked up by code and reused on rerun.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/category"
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/domain/documents/order"
	"bizstock/internal/domain/documents/production"
	"bizstock/internal/domain/documents/purchase"
	"bizstock/internal/domain/inventory"
	"bizstock/internal/infrastructure/storage/postgres"
	"bizstock/internal/infrastructure/storage/postgres/catalog_repo"
	"bizstock/internal/infrastructure/storage/postgres/document_repo"
	"bizstock/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)

	categoryRepo := catalog_repo.NewCategoryRepo(txm)
	customerRepo := catalog_repo.NewCustomerRepo(txm)
	supplierRepo := catalog_repo.NewSupplierRepo(txm)
	materialRepo := catalog_repo.NewMaterialRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	purchaseRepo := document_repo.NewPurchaseRepo(txm)
	productionRepo := document_repo.NewProductionRepo(txm)
	orderRepo := document_repo.NewOrderRepo(txm)

	applier := inventory.NewApplier(materialRepo, productRepo)

	s := &seeder{
		log:         log,
		categories:  category.NewService(categoryRepo, txm),
		customers:   customer.NewService(customerRepo, txm),
		suppliers:   supplier.NewService(supplierRepo, txm),
		materials:   material.NewService(materialRepo, categoryRepo, txm),
		products:    product.NewService(productRepo, categoryRepo, materialRepo, txm),
		purchases:   purchase.NewService(purchaseRepo, supplierRepo, materialRepo, applier, txm),
		productions: production.NewService(productionRepo, productRepo, applier, txm),
		orders:      order.NewService(orderRepo, customerRepo, productRepo, applier, txm),
	}

	if err := s.seedCatalogs(ctx); err != nil {
		log.Fatalw("failed to seed catalogs", "error", err)
	}

	// Documents move stock, so they are opt-in.
	if os.Getenv("SEED_DEMO_DOCS") == "true" {
		if err := s.seedDocuments(ctx); err != nil {
			log.Fatalw("failed to seed documents", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

type seeder struct {
	log         *logger.Logger
	categories  *category.Service
	customers   *customer.Service
	suppliers   *supplier.Service
	materials   *material.Service
	products    *product.Service
	purchases   *purchase.Service
	productions *production.Service
	orders      *order.Service

	categoryIDs map[string]id.ID
	materialIDs map[string]id.ID
	productIDs  map[string]id.ID
	supplierID  id.ID
	customerID  id.ID
}

func (s *seeder) seedCatalogs(ctx context.Context) error {
	s.categoryIDs = make(map[string]id.ID)
	s.materialIDs = make(map[string]id.ID)
	s.productIDs = make(map[string]id.ID)

	// Categories
	for _, c := range []struct {
		code, name, description string
	}{
		{"CAT-WOOD", "Wood", "Timber and board stock"},
		{"CAT-HW", "Hardware", "Screws, hinges and fittings"},
		{"CAT-FURN", "Furniture", "Finished furniture"},
	} {
		existing, err := s.categories.GetByCode(ctx, c.code)
		if err == nil {
			s.categoryIDs[c.code] = existing.ID
			continue
		}
		if !apperror.IsNotFound(err) {
			return fmt.Errorf("look up category %s: %w", c.code, err)
		}

		item := category.NewCategory(c.code, c.name)
		desc := c.description
		item.Description = &desc
		if err := s.categories.Create(ctx, item); err != nil {
			return fmt.Errorf("create category %s: %w", c.code, err)
		}
		s.categoryIDs[c.code] = item.ID
		s.log.Infow("category created", "code", c.code)
	}

	// Supplier
	supplierID, err := s.seedSupplier(ctx)
	if err != nil {
		return err
	}
	s.supplierID = supplierID

	// Customer
	customerID, err := s.seedCustomer(ctx)
	if err != nil {
		return err
	}
	s.customerID = customerID

	// Materials
	for _, m := range []struct {
		code, name, categoryCode, unit, price string
	}{
		{"MAT-OAK", "Oak board 20mm", "CAT-WOOD", "m2", "18.50"},
		{"MAT-PINE", "Pine plank 18mm", "CAT-WOOD", "m2", "9.90"},
		{"MAT-SCREW", "Wood screw 4x40", "CAT-HW", "pcs", "0.04"},
		{"MAT-HINGE", "Concealed hinge", "CAT-HW", "pcs", "1.20"},
	} {
		existing, err := s.materials.GetByCode(ctx, m.code)
		if err == nil {
			s.materialIDs[m.code] = existing.ID
			continue
		}
		if !apperror.IsNotFound(err) {
			return fmt.Errorf("look up material %s: %w", m.code, err)
		}

		item := material.NewMaterial(m.code, m.name, s.categoryIDs[m.categoryCode])
		item.Unit = m.unit
		item.Price = types.MustMoney(m.price)
		if err := s.materials.Create(ctx, item); err != nil {
			return fmt.Errorf("create material %s: %w", m.code, err)
		}
		s.materialIDs[m.code] = item.ID
		s.log.Infow("material created", "code", m.code)
	}

	// Products with their bills of materials
	type bomLine struct {
		materialCode string
		qty          float64
	}
	for _, p := range []struct {
		code, name, unit, price string
		bom                     []bomLine
	}{
		{"PRD-TABLE", "Oak dining table", "pcs", "249.00", []bomLine{
			{"MAT-OAK", 2.5},
			{"MAT-SCREW", 24},
		}},
		{"PRD-SHELF", "Pine wall shelf", "pcs", "39.00", []bomLine{
			{"MAT-PINE", 0.8},
			{"MAT-SCREW", 8},
		}},
		{"PRD-CABINET", "Pine cabinet", "pcs", "129.00", []bomLine{
			{"MAT-PINE", 3.2},
			{"MAT-SCREW", 32},
			{"MAT-HINGE", 4},
		}},
	} {
		existing, err := s.products.GetByCode(ctx, p.code)
		if err == nil {
			s.productIDs[p.code] = existing.ID
			continue
		}
		if !apperror.IsNotFound(err) {
			return fmt.Errorf("look up product %s: %w", p.code, err)
		}

		item := product.NewProduct(p.code, p.name, s.categoryIDs["CAT-FURN"])
		item.Unit = p.unit
		item.Price = types.MustMoney(p.price)
		for _, line := range p.bom {
			item.AddDetail(s.materialIDs[line.materialCode], types.NewQuantityFromFloat64(line.qty))
		}
		if err := s.products.Create(ctx, item); err != nil {
			return fmt.Errorf("create product %s: %w", p.code, err)
		}
		s.productIDs[p.code] = item.ID
		s.log.Infow("product created", "code", p.code)
	}

	return nil
}

func (s *seeder) seedSupplier(ctx context.Context) (id.ID, error) {
	const code = "SUP-001"

	existing, err := s.suppliers.GetByCode(ctx, code)
	if err == nil {
		return existing.ID, nil
	}
	if !apperror.IsNotFound(err) {
		return id.Nil(), fmt.Errorf("look up supplier %s: %w", code, err)
	}

	item := supplier.NewSupplier(code, "Timberline Supplies Ltd")
	email := "sales@timberline.example.com"
	phone := "+44 20 7946 0101"
	city := "Bristol"
	item.Email = &email
	item.Phone = &phone
	item.City = &city
	if err := s.suppliers.Create(ctx, item); err != nil {
		return id.Nil(), fmt.Errorf("create supplier %s: %w", code, err)
	}
	s.log.Infow("supplier created", "code", code)
	return item.ID, nil
}

func (s *seeder) seedCustomer(ctx context.Context) (id.ID, error) {
	const code = "CUS-001"

	existing, err := s.customers.GetByCode(ctx, code)
	if err == nil {
		return existing.ID, nil
	}
	if !apperror.IsNotFound(err) {
		return id.Nil(), fmt.Errorf("look up customer %s: %w", code, err)
	}

	item := customer.NewCustomer(code, "Harbour Home Interiors")
	email := "orders@harbourhome.example.com"
	phone := "+44 20 7946 0202"
	city := "Portsmouth"
	item.Email = &email
	item.Phone = &phone
	item.City = &city
	if err := s.customers.Create(ctx, item); err != nil {
		return id.Nil(), fmt.Errorf("create customer %s: %w", code, err)
	}
	s.log.Infow("customer created", "code", code)
	return item.ID, nil
}

// seedDocuments posts one purchase, one production run and one order.
// The sequence is deliberate: the purchase stocks the materials the
// production consumes, and the production stocks the product the order
// ships.
func (s *seeder) seedDocuments(ctx context.Context) error {
	day := time.Now().Truncate(24 * time.Hour)

	const purchaseCode = "PUR-0001"
	if exists, err := s.purchaseExists(ctx, purchaseCode); err != nil {
		return err
	} else if !exists {
		doc := purchase.NewPurchase(purchaseCode, day, s.supplierID)
		doc.AddDetail(s.materialIDs["MAT-OAK"], types.NewQuantityFromFloat64(50))
		doc.AddDetail(s.materialIDs["MAT-PINE"], types.NewQuantityFromFloat64(80))
		doc.AddDetail(s.materialIDs["MAT-SCREW"], types.NewQuantityFromFloat64(2000))
		doc.AddDetail(s.materialIDs["MAT-HINGE"], types.NewQuantityFromFloat64(100))
		if err := s.purchases.Create(ctx, doc); err != nil {
			return fmt.Errorf("create purchase %s: %w", purchaseCode, err)
		}
		s.log.Infow("purchase posted", "code", purchaseCode)
	}

	const productionCode = "PRO-0001"
	if exists, err := s.productionExists(ctx, productionCode); err != nil {
		return err
	} else if !exists {
		doc := production.NewProduction(productionCode, day, s.productIDs["PRD-TABLE"], types.NewQuantityFromFloat64(4))
		if err := s.productions.Create(ctx, doc); err != nil {
			return fmt.Errorf("create production %s: %w", productionCode, err)
		}
		s.log.Infow("production posted", "code", productionCode)
	}

	const orderCode = "ORD-0001"
	if exists, err := s.orderExists(ctx, orderCode); err != nil {
		return err
	} else if !exists {
		doc := order.NewOrder(orderCode, day, s.customerID)
		doc.AddDetail(s.productIDs["PRD-TABLE"], types.NewQuantityFromFloat64(2))
		if err := s.orders.Create(ctx, doc); err != nil {
			return fmt.Errorf("create order %s: %w", orderCode, err)
		}
		s.log.Infow("order posted", "code", orderCode)
	}

	return nil
}

func (s *seeder) purchaseExists(ctx context.Context, code string) (bool, error) {
	docs, err := s.purchases.Find(ctx, purchase.Filter{Search: code})
	if err != nil {
		return false, fmt.Errorf("look up purchase %s: %w", code, err)
	}
	return len(docs) > 0, nil
}

func (s *seeder) productionExists(ctx context.Context, code string) (bool, error) {
	docs, err := s.productions.Find(ctx, production.Filter{Search: code})
	if err != nil {
		return false, fmt.Errorf("look up production %s: %w", code, err)
	}
	return len(docs) > 0, nil
}

func (s *seeder) orderExists(ctx context.Context, code string) (bool, error) {
	docs, err := s.orders.Find(ctx, order.Filter{Search: code})
	if err != nil {
		return false, fmt.Errorf("look up order %s: %w", code, err)
	}
	return len(docs) > 0, nil
}
