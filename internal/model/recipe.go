package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidVersionType is returned when a version is saved with an unknown type
var ErrInvalidVersionType = errors.New("invalid recipe version type")

// VersionType mirrors the recipe_version_type enum
type VersionType string

const (
	VersionOriginal VersionType = "original"
	VersionModified VersionType = "modified"
)

// Valid reports whether v is one of the enum members
func (v VersionType) Valid() bool {
	return v == VersionOriginal || v == VersionModified
}

// JSONB holds an arbitrary JSON document stored in a jsonb column. A nil
// value is stored as SQL NULL and rendered as JSON null.
type JSONB []byte

// Value implements the driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	if !json.Valid(j) {
		return nil, fmt.Errorf("invalid json document")
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSONB(nil), v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", value)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*j = nil
		return nil
	}
	*j = append((*j)[:0], data...)
	return nil
}

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UserID      string    `gorm:"type:text;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Macronutrients *Macronutrients    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"macronutrients,omitempty"`
	Ingredients    []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Allergens      []RecipeAllergen   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"allergens,omitempty"`
	Versions       []RecipeVersion    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"versions,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient links a recipe to a catalog ingredient with an amount
type RecipeIngredient struct {
	RecipeID     uint        `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint        `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64     `gorm:"not null" json:"quantity"`
	Unit         *string     `gorm:"size:10" json:"unit"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type RecipeAllergen struct {
	RecipeID   uint      `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	AllergenID uint      `gorm:"primaryKey;autoIncrement:false" json:"allergen_id"`
	Allergen   *Allergen `gorm:"foreignKey:AllergenID" json:"allergen,omitempty"`
}

func (RecipeAllergen) TableName() string {
	return "recipe_allergens"
}

type RecipeVersion struct {
	VersionID     uint        `gorm:"column:version_id;primaryKey" json:"version_id"`
	RecipeID      uint        `gorm:"not null;index" json:"recipe_id"`
	VersionNumber int         `gorm:"not null;check:version_number >= 1" json:"version_number"`
	VersionType   VersionType `gorm:"size:16;not null;check:version_type = 'original' OR version_type = 'modified'" json:"version_type"`
	Changes       JSONB       `gorm:"type:jsonb" json:"changes"`
	RecordedAt    time.Time   `gorm:"autoCreateTime" json:"recorded_at"`
}

func (RecipeVersion) TableName() string {
	return "recipe_versions"
}

// BeforeCreate rejects version types outside the enum. SQLite has no enum
// type, so this is the only check there.
func (v *RecipeVersion) BeforeCreate(*gorm.DB) error {
	if !v.VersionType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidVersionType, v.VersionType)
	}
	return nil
}
