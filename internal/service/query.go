package service

import (
	"math"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/internal/types"
)

// RecipeFilter is the compiled form of a listing request. It is a value;
// the scopes it returns never modify it.
type RecipeFilter struct {
	Owner            string
	Kcal             *float64
	MaxCarbs         *float64
	ExcludeAllergens []string
	Random           bool
	Page             int
	PageSize         int
}

// NewRecipeFilter copies a validated query into a filter for owner
func NewRecipeFilter(owner string, q types.ListRecipesQuery) RecipeFilter {
	f := RecipeFilter{
		Owner:    owner,
		Random:   q.Random,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Kcal != nil {
		v := *q.Kcal
		f.Kcal = &v
	}
	if q.MaxCarbs != nil {
		v := *q.MaxCarbs
		f.MaxCarbs = &v
	}
	if len(q.Allergens) > 0 {
		f.ExcludeAllergens = append([]string(nil), q.Allergens...)
	}
	return f
}

// Offset is the number of rows skipped before the requested page. It
// saturates at math.MaxInt instead of overflowing.
func (f RecipeFilter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PageSize {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PageSize
}

// Scope applies the owner and the optional predicates. Recipes without any
// ingredient are never listed.
func (f RecipeFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN macronutrients ON macronutrients.recipe_id = recipes.id").
			Where("recipes.user_id = ?", f.Owner).
			Where("EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id)")

		if f.Kcal != nil {
			db = db.Where("macronutrients.calories = ?", *f.Kcal)
		}
		if f.MaxCarbs != nil {
			db = db.Where("macronutrients.carbs <= ?", *f.MaxCarbs)
		}
		if len(f.ExcludeAllergens) > 0 {
			db = db.Where(`NOT EXISTS (SELECT 1 FROM recipe_allergens ra
				JOIN allergens a ON a.id = ra.allergen_id
				WHERE ra.recipe_id = recipes.id AND a.name IN ?)`, f.ExcludeAllergens)
		}
		return db
	}
}

// Window orders and limits the result: one random row, or a page in id order.
func (f RecipeFilter) Window() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Random {
			return db.Order("RANDOM()").Limit(1)
		}
		return db.Order("recipes.id").Offset(f.Offset()).Limit(f.PageSize)
	}
}

// Fields describes the filter for log entries
func (f RecipeFilter) Fields() logrus.Fields {
	fields := logrus.Fields{
		"owner":     f.Owner,
		"random":    f.Random,
		"page":      f.Page,
		"page_size": f.PageSize,
	}
	if f.Kcal != nil {
		fields["kcal"] = *f.Kcal
	}
	if f.MaxCarbs != nil {
		fields["max_carbs"] = *f.MaxCarbs
	}
	if len(f.ExcludeAllergens) > 0 {
		fields["allergens"] = f.ExcludeAllergens
	}
	return fields
}
