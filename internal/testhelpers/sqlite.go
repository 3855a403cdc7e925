package testhelpers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukaszlop/ketoggler/internal/database"
	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/model"
)

// SetupSQLite returns a migrated, isolated in-memory database
func SetupSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.NewMigrator(db, "", logging.Discard()).Up(context.Background()); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return db
}

// Catalog is the fixture catalog inserted by SeedCatalog, keyed by name.
type Catalog struct {
	Ingredients map[string]model.Ingredient
	Allergens   map[string]model.Allergen
}

// SeedCatalog inserts a small fixed catalog every recipe test can rely on
func SeedCatalog(t *testing.T, db *gorm.DB) Catalog {
	t.Helper()

	cat := Catalog{
		Ingredients: map[string]model.Ingredient{},
		Allergens:   map[string]model.Allergen{},
	}
	for _, name := range []string{"Chicken", "Broccoli", "Butter", "Cream", "Almonds", "Eggs", "Salmon"} {
		ing := model.Ingredient{Name: name}
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("failed to seed ingredient %s: %v", name, err)
		}
		cat.Ingredients[name] = ing
	}
	for _, name := range []string{"Dairy", "Nuts", "Eggs", "Fish"} {
		al := model.Allergen{Name: name}
		if err := db.Create(&al).Error; err != nil {
			t.Fatalf("failed to seed allergen %s: %v", name, err)
		}
		cat.Allergens[name] = al
	}
	return cat
}
