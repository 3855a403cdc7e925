package service

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/internal/model"
)

// resolveAllergens looks up catalog allergens by name. Names missing from
// the catalog are returned separately, they are not an error.
func resolveAllergens(tx *gorm.DB, names []string) ([]model.Allergen, []string, error) {
	requested := mapset.NewThreadUnsafeSet[string](names...)
	if requested.Cardinality() == 0 {
		return nil, nil, nil
	}

	var found []model.Allergen
	if err := tx.Where("name IN ?", requested.ToSlice()).Order("id").Find(&found).Error; err != nil {
		return nil, nil, err
	}

	foundNames := mapset.NewThreadUnsafeSet[string]()
	for _, a := range found {
		foundNames.Add(a.Name)
	}
	missing := requested.Difference(foundNames).ToSlice()
	sort.Strings(missing)

	return found, missing, nil
}

func writeAudit(tx *gorm.DB, table, operation string, recordID uint, owner string) error {
	entry := model.AuditLog{
		Table:     table,
		Operation: operation,
		RecordID:  recordID,
		ChangedBy: &owner,
	}
	return tx.Create(&entry).Error
}
