package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/testhelpers"
)

func TestRecipeVersionRejectsUnknownType(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	err := db.Create(&model.RecipeVersion{RecipeID: 1, VersionNumber: 1, VersionType: "draft"}).Error
	require.ErrorIs(t, err, model.ErrInvalidVersionType)

	var count int64
	require.NoError(t, db.Model(&model.RecipeVersion{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeVersionAcceptsEnumTypes(t *testing.T) {
	for _, vt := range []model.VersionType{model.VersionOriginal, model.VersionModified} {
		v := &model.RecipeVersion{VersionType: vt}
		assert.NoError(t, v.BeforeCreate(nil))
	}
}
