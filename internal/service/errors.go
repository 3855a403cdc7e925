package service

import (
	"errors"
	"fmt"
)

var (
	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrRecipeNotFoundAfterWrite = errors.New("recipe not found after creation")
	ErrFavoriteNotFound         = errors.New("favorite not found")
	ErrProfileNotFound          = errors.New("profile not found")
	ErrInvalidToken             = errors.New("invalid token")
	ErrTokenExpired             = errors.New("token has expired")
)

// Step names one datastore round trip of the recipe creation pipeline
type Step string

const (
	StepRecipe         Step = "recipe"
	StepMacronutrients Step = "macronutrients"
	StepIngredients    Step = "ingredients"
	StepAllergens      Step = "allergens"
	StepVersion        Step = "version"
	StepAudit          Step = "audit"
	StepFetch          Step = "fetch"
)

// StepError reports which pipeline step failed
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("failed to create recipe (%s step): %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step Step, err error) error {
	return &StepError{Step: step, Err: err}
}
