package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/testhelpers"
	"github.com/lukaszlop/ketoggler/internal/types"
)

func TestProfile(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	testhelpers.SeedCatalog(t, db)
	svc := NewProfileService(db, logging.Discard())
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, testOwner)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	created, err := svc.UpdateProfile(ctx, testOwner, &types.UpdateUserProfileCommand{
		DietaryPreferences: "keto",
		Allergens:          []string{"Nuts", "Dairy", "Shellfish"},
	})
	require.NoError(t, err)
	assert.Equal(t, testOwner, created.UserID)
	assert.Equal(t, "keto", created.DietaryPreferences)
	assert.ElementsMatch(t, []string{"Nuts", "Dairy"}, created.Allergens)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := svc.UpdateProfile(ctx, testOwner, &types.UpdateUserProfileCommand{
		DietaryPreferences: "strict keto",
		Allergens:          []string{"Fish"},
	})
	require.NoError(t, err)
	assert.Equal(t, "strict keto", updated.DietaryPreferences)
	assert.Equal(t, []string{"Fish"}, updated.Allergens)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	got, err := svc.GetProfile(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	var profiles, links, audits int64
	require.NoError(t, db.Model(&model.UserProfile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&model.UserAllergen{}).Count(&links).Error)
	require.NoError(t, db.Model(&model.AuditLog{}).Where("table_name = ?", "user_profiles").Count(&audits).Error)
	assert.Equal(t, int64(1), profiles)
	assert.Equal(t, int64(1), links)
	assert.Equal(t, int64(2), audits)
}

func TestProfileClearAllergens(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	testhelpers.SeedCatalog(t, db)
	svc := NewProfileService(db, logging.Discard())
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, testOwner, &types.UpdateUserProfileCommand{Allergens: []string{"Eggs"}})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(ctx, testOwner, &types.UpdateUserProfileCommand{Allergens: []string{}})
	require.NoError(t, err)
	assert.NotNil(t, got.Allergens)
	assert.Empty(t, got.Allergens)
	assert.Equal(t, "", got.DietaryPreferences)
}
