// Package main provides a CLI tool for creating the database schema and
// seeding reference data (categories and brands), plus optional demo
// products and clients.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stockpilot/internal/core/types"
	"stockpilot/internal/domain"
	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/domain/catalogs/category"
	"stockpilot/internal/domain/catalogs/client"
	"stockpilot/internal/domain/catalogs/product"
	"stockpilot/internal/infrastructure/storage/postgres"
	"stockpilot/internal/infrastructure/storage/postgres/catalog_repo"
	"stockpilot/pkg/logger"
)

// schema creates the tables and the unique indexes the services rely on.
// Client names are unique case-insensitively, hence the LOWER(name)
// index; client phone uniqueness compares the digits-only normalized
// form. Product names carry no uniqueness constraint.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS categories_name_lower_key ON categories (LOWER(name));

CREATE TABLE IF NOT EXISTS brands (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS brands_name_lower_key ON brands (LOWER(name));

CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	price          NUMERIC(15,2) NOT NULL DEFAULT 0,
	stock_quantity INTEGER NOT NULL DEFAULT 0,
	image_url      TEXT,
	due_date       DATE NOT NULL,
	category_id    TEXT NOT NULL REFERENCES categories(id),
	brand_id       TEXT REFERENCES brands(id)
);
CREATE INDEX IF NOT EXISTS products_category_id_idx ON products (category_id);

CREATE TABLE IF NOT EXISTS clients (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	phone            TEXT NOT NULL,
	phone_normalized TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS clients_name_lower_key ON clients (LOWER(name));
CREATE UNIQUE INDEX IF NOT EXISTS clients_phone_normalized_key ON clients (phone_normalized);
`

var defaultCategories = []string{
	"Beverages", "Dairy", "Bakery", "Produce", "Frozen", "Cleaning",
}

var defaultBrands = []string{
	"Acme", "Globex", "Initech", "Umbrella",
}

func main() {
	_ = godotenv.Load()

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

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ready")

	txManager := postgres.NewTxManager(pool)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	brandRepo := catalog_repo.NewBrandRepo(txManager)

	if err := seedCategories(ctx, categoryRepo, log); err != nil {
		log.Fatalw("failed to seed categories", "error", err)
	}
	if err := seedBrands(ctx, brandRepo, log); err != nil {
		log.Fatalw("failed to seed brands", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, txManager, categoryRepo, brandRepo, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedCategories(ctx context.Context, repo *catalog_repo.CategoryRepo, log *logger.Logger) error {
	for _, name := range defaultCategories {
		existing, err := repo.List(ctx, listByName(name))
		if err != nil {
			return err
		}
		if existing.TotalCount > 0 {
			continue
		}

		item := category.NewCategory("", name)
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
		log.Infow("category created", "name", name, "id", item.ID)
	}
	return nil
}

func seedBrands(ctx context.Context, repo *catalog_repo.BrandRepo, log *logger.Logger) error {
	for _, name := range defaultBrands {
		existing, err := repo.List(ctx, listByName(name))
		if err != nil {
			return err
		}
		if existing.TotalCount > 0 {
			continue
		}

		item := brand.NewBrand("", name)
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
		log.Infow("brand created", "name", name, "id", item.ID)
	}
	return nil
}

func seedDemoData(
	ctx context.Context,
	txManager *postgres.TxManager,
	categoryRepo *catalog_repo.CategoryRepo,
	brandRepo *catalog_repo.BrandRepo,
	log *logger.Logger,
) error {
	categories, err := categoryRepo.List(ctx, listByName(defaultCategories[0]))
	if err != nil {
		return err
	}
	if len(categories.Items) == 0 {
		return fmt.Errorf("no categories available for demo products")
	}
	categoryID := categories.Items[0].ID

	brands, err := brandRepo.List(ctx, listByName(defaultBrands[0]))
	if err != nil {
		return err
	}
	var brandID *string
	if len(brands.Items) > 0 {
		brandID = &brands.Items[0].ID
	}

	productRepo := catalog_repo.NewProductRepo(txManager)
	clientRepo := catalog_repo.NewClientRepo(txManager)

	demoProducts := []struct {
		name  string
		price string
		stock int
	}{
		{"Sparkling Water 500ml", "2.50", 120},
		{"Whole Milk 1L", "1.89", 45},
		{"Sourdough Loaf", "4.20", 12},
	}

	dueDate := product.NormalizeDate(time.Now().AddDate(0, 1, 0))
	for _, d := range demoProducts {
		item := product.NewProduct("", d.name, types.MustMoney(d.price), d.stock, dueDate, categoryID)
		item.BrandID = brandID
		if err := productRepo.Create(ctx, item); err != nil {
			log.Warnw("demo product skipped", "name", d.name, "error", err)
			continue
		}
		log.Infow("demo product created", "name", d.name, "id", item.ID)
	}

	demoClients := []struct {
		name  string
		phone string
	}{
		{"Maria Souza", "+55 (11) 99999-0001"},
		{"John Carter", "+1 (415) 555-0102"},
	}

	for _, d := range demoClients {
		item := client.NewClient("", d.name, d.phone)
		if err := clientRepo.Create(ctx, item); err != nil {
			log.Warnw("demo client skipped", "name", d.name, "error", err)
			continue
		}
		log.Infow("demo client created", "name", d.name, "id", item.ID)
	}

	return nil
}

// listByName builds a filter that matches records whose name contains
// the given value. Good enough to make seeding idempotent.
func listByName(name string) domain.ListFilter {
	return domain.ListFilter{
		Search:  name,
		OrderBy: "name",
		Limit:   1,
	}
}
