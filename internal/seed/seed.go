// Package seed loads the ingredient and allergen catalog into the database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lukaszlop/ketoggler/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogFile is the layout of catalog.yaml
type CatalogFile struct {
	Ingredients []string `yaml:"ingredients"`
	Allergens   []string `yaml:"allergens"`
}

// Result counts the rows inserted by one run
type Result struct {
	Ingredients int64
	Allergens   int64
}

// Parse decodes a catalog document, rejecting blank names.
func Parse(data []byte) (*CatalogFile, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, name := range f.Ingredients {
		if f.Ingredients[i] = strings.TrimSpace(name); f.Ingredients[i] == "" {
			return nil, fmt.Errorf("ingredient %d has no name", i)
		}
	}
	for i, name := range f.Allergens {
		if f.Allergens[i] = strings.TrimSpace(name); f.Allergens[i] == "" {
			return nil, fmt.Errorf("allergen %d has no name", i)
		}
	}
	return &f, nil
}

// Catalog inserts the embedded catalog. Names already present are left
// untouched so running it again is a no-op.
func Catalog(ctx context.Context, db *gorm.DB) (Result, error) {
	f, err := Parse(catalogYAML)
	if err != nil {
		return Result{}, err
	}
	return Apply(ctx, db, f)
}

// Apply inserts the names of f that are missing, in one transaction
func Apply(ctx context.Context, db *gorm.DB, f *CatalogFile) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(f.Ingredients) > 0 {
			rows := make([]model.Ingredient, 0, len(f.Ingredients))
			for _, name := range f.Ingredients {
				rows = append(rows, model.Ingredient{Name: name})
			}
			q := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows)
			if q.Error != nil {
				return fmt.Errorf("seed ingredients: %w", q.Error)
			}
			res.Ingredients = q.RowsAffected
		}

		if len(f.Allergens) > 0 {
			rows := make([]model.Allergen, 0, len(f.Allergens))
			for _, name := range f.Allergens {
				rows = append(rows, model.Allergen{Name: name})
			}
			q := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows)
			if q.Error != nil {
				return fmt.Errorf("seed allergens: %w", q.Error)
			}
			res.Allergens = q.RowsAffected
		}
		return nil
	})
	return res, err
}
