package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log logrus.FieldLogger) *RecipeService {
	return &RecipeService{
		db:  db,
		log: log,
	}
}

// CreateRecipe writes a recipe with its macronutrients, ingredient and
// allergen links, first version and audit entry in one transaction, then
// reads it back. Failures are reported as *StepError.
func (s *RecipeService) CreateRecipe(ctx context.Context, owner string, req *types.CreateRecipeRequest) (*types.RecipeDto, error) {
	log := logging.FromContext(ctx, s.log)

	var recipeID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.insertRecipe(tx, log, owner, req)
		recipeID = id
		return err
	})
	if err != nil {
		return nil, s.fail(log, err)
	}

	recipe, err := s.loadRecipe(ctx, recipeID, "")
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			err = ErrRecipeNotFoundAfterWrite
		}
		return nil, s.fail(log, stepError(StepFetch, err))
	}

	recipesCreated.Inc()
	log.WithFields(logrus.Fields{"recipe_id": recipeID, "owner": owner}).Info("recipe created")

	dto := ToRecipeDto(recipe)
	return &dto, nil
}

func (s *RecipeService) insertRecipe(tx *gorm.DB, log logrus.FieldLogger, owner string, req *types.CreateRecipeRequest) (uint, error) {
	recipe := model.Recipe{
		Title:       req.Title,
		Description: req.Description,
		UserID:      owner,
	}
	if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
		return 0, stepError(StepRecipe, err)
	}

	macros := model.Macronutrients{RecipeID: recipe.ID}
	if m := req.Macronutrients; m != nil {
		macros.Calories = deref(m.Calories)
		macros.Protein = deref(m.Protein)
		macros.Carbs = deref(m.Carbs)
		macros.Fats = deref(m.Fats)
	}
	if err := tx.Create(&macros).Error; err != nil {
		return 0, stepError(StepMacronutrients, err)
	}

	links := make([]model.RecipeIngredient, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		unit := in.Unit
		links = append(links, model.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: uint(in.IngredientID),
			Quantity:     deref(in.Quantity),
			Unit:         &unit,
		})
	}
	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return 0, stepError(StepIngredients, err)
	}

	if len(req.Allergens) > 0 {
		found, missing, err := resolveAllergens(tx, req.Allergens)
		if err != nil {
			return 0, stepError(StepAllergens, err)
		}
		if len(missing) > 0 {
			droppedAllergens.Add(float64(len(missing)))
			log.WithField("allergens", missing).Debug("ignoring allergens missing from the catalog")
		}
		if len(found) > 0 {
			allergenLinks := make([]model.RecipeAllergen, 0, len(found))
			for _, a := range found {
				allergenLinks = append(allergenLinks, model.RecipeAllergen{RecipeID: recipe.ID, AllergenID: a.ID})
			}
			if err := tx.Omit(clause.Associations).Create(&allergenLinks).Error; err != nil {
				return 0, stepError(StepAllergens, err)
			}
		}
	}

	version := model.RecipeVersion{
		RecipeID:      recipe.ID,
		VersionNumber: 1,
		VersionType:   model.VersionOriginal,
	}
	if err := tx.Create(&version).Error; err != nil {
		return 0, stepError(StepVersion, err)
	}

	if err := writeAudit(tx, recipe.TableName(), model.OperationInsert, recipe.ID, owner); err != nil {
		return 0, stepError(StepAudit, err)
	}

	return recipe.ID, nil
}

func (s *RecipeService) fail(log logrus.FieldLogger, err error) error {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		pipelineFailures.WithLabelValues(string(stepErr.Step)).Inc()
		log.WithError(stepErr.Err).WithField("step", stepErr.Step).Error("recipe creation failed")
		return err
	}
	log.WithError(err).Error("recipe creation failed")
	return err
}

// ListRecipes returns one page, or one random recipe, of owner's recipes
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) (*types.PagedRecipesResponse, error) {
	log := logging.FromContext(ctx, s.log).WithFields(filter.Fields())

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Scopes(filter.Scope()).Count(&total).Error; err != nil {
		log.WithError(err).Error("failed to count recipes")
		return nil, fmt.Errorf("count recipes: %w", err)
	}

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Scopes(filter.Scope(), filter.Window(), preloadRecipe).
		Find(&recipes).Error
	if err != nil {
		log.WithError(err).Error("failed to list recipes")
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	resp := &types.PagedRecipesResponse{
		Data: make([]types.RecipeDto, 0, len(recipes)),
		Pagination: types.Pagination{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Total:    total,
		},
	}
	for i := range recipes {
		resp.Data = append(resp.Data, ToRecipeDto(&recipes[i]))
	}
	return resp, nil
}

// GetRecipe returns one of owner's recipes
func (s *RecipeService) GetRecipe(ctx context.Context, owner string, id uint) (*types.RecipeDto, error) {
	recipe, err := s.loadRecipe(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	dto := ToRecipeDto(recipe)
	return &dto, nil
}

// ListVersions returns the version history of one of owner's recipes
func (s *RecipeService) ListVersions(ctx context.Context, owner string, id uint) (*types.RecipeVersionsResponse, error) {
	db := s.db.WithContext(ctx)
	if err := ensureOwned(db, owner, id); err != nil {
		return nil, err
	}

	var versions []model.RecipeVersion
	if err := db.Where("recipe_id = ?", id).Order("version_number").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	resp := &types.RecipeVersionsResponse{Versions: make([]types.RecipeVersionDto, 0, len(versions))}
	for _, v := range versions {
		resp.Versions = append(resp.Versions, toVersionDto(v))
	}
	return resp, nil
}

// loadRecipe reads a recipe with every association. An empty owner skips
// the ownership check.
func (s *RecipeService) loadRecipe(ctx context.Context, id uint, owner string) (*model.Recipe, error) {
	db := s.db.WithContext(ctx).Scopes(preloadRecipe).Where("recipes.id = ?", id)
	if owner != "" {
		db = db.Where("recipes.user_id = ?", owner)
	}

	var recipe model.Recipe
	res := db.Limit(1).Find(&recipe)
	if res.Error != nil {
		return nil, fmt.Errorf("load recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}
	return &recipe, nil
}

func ensureOwned(db *gorm.DB, owner string, id uint) error {
	var count int64
	if err := db.Model(&model.Recipe{}).Where("id = ? AND user_id = ?", id, owner).Count(&count).Error; err != nil {
		return fmt.Errorf("check recipe %d: %w", id, err)
	}
	if count == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func preloadRecipe(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Macronutrients").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.ingredient_id")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Allergens", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_allergens.allergen_id")
		}).
		Preload("Allergens.Allergen")
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
