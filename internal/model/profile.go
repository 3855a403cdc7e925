package model

import "time"

type UserProfile struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             string         `gorm:"type:text;not null;uniqueIndex" json:"user_id"`
	DietaryPreferences *string        `gorm:"type:text" json:"dietary_preferences"`
	CreatedAt          time.Time      `json:"created_at"`
	Allergens          []UserAllergen `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE" json:"allergens,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

type UserAllergen struct {
	UserProfileID uint      `gorm:"primaryKey;autoIncrement:false" json:"user_profile_id"`
	AllergenID    uint      `gorm:"primaryKey;autoIncrement:false" json:"allergen_id"`
	Allergen      *Allergen `gorm:"foreignKey:AllergenID" json:"allergen,omitempty"`
}

func (UserAllergen) TableName() string {
	return "user_allergens"
}
