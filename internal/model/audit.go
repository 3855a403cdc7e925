package model

import "time"

const (
	OperationInsert = "INSERT"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"
)

// AuditLog records a write against one row of a table
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Table     string    `gorm:"column:table_name;size:64;not null" json:"table_name"`
	Operation string    `gorm:"size:16;not null" json:"operation"`
	RecordID  uint      `gorm:"not null" json:"record_id"`
	ChangedBy *string   `gorm:"type:text" json:"changed_by"`
	ChangedAt time.Time `gorm:"autoCreateTime" json:"changed_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

// All lists every persisted model in dependency order
func All() []interface{} {
	return []interface{}{
		&Ingredient{},
		&Allergen{},
		&Recipe{},
		&Macronutrients{},
		&RecipeIngredient{},
		&RecipeAllergen{},
		&RecipeVersion{},
		&UserProfile{},
		&UserAllergen{},
		&Favorite{},
		&AuditLog{},
	}
}
