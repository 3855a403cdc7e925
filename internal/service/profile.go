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

// ProfileService handles user profile operations
type ProfileService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB, log logrus.FieldLogger) *ProfileService {
	return &ProfileService{
		db:  db,
		log: log,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, owner string) (*types.UserProfileDto, error) {
	profile, err := s.load(s.db.WithContext(ctx), owner)
	if err != nil {
		return nil, err
	}
	dto := toProfileDto(profile)
	return &dto, nil
}

// UpdateProfile creates or updates owner's profile and replaces its
// allergens. Allergen names missing from the catalog are dropped.
func (s *ProfileService) UpdateProfile(ctx context.Context, owner string, cmd *types.UpdateUserProfileCommand) (*types.UserProfileDto, error) {
	log := logging.FromContext(ctx, s.log)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prefs := cmd.DietaryPreferences
		profile := model.UserProfile{UserID: owner}
		operation := model.OperationUpdate

		res := tx.Where("user_id = ?", owner).Limit(1).Find(&profile)
		if res.Error != nil {
			return fmt.Errorf("find profile: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			operation = model.OperationInsert
			profile.DietaryPreferences = &prefs
			if err := tx.Omit(clause.Associations).Create(&profile).Error; err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
		} else if err := tx.Model(&profile).Update("dietary_preferences", prefs).Error; err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		if err := tx.Where("user_profile_id = ?", profile.ID).Delete(&model.UserAllergen{}).Error; err != nil {
			return fmt.Errorf("clear allergens: %w", err)
		}

		found, missing, err := resolveAllergens(tx, cmd.Allergens)
		if err != nil {
			return fmt.Errorf("resolve allergens: %w", err)
		}
		if len(missing) > 0 {
			droppedAllergens.Add(float64(len(missing)))
			log.WithField("allergens", missing).Debug("ignoring allergens missing from the catalog")
		}
		if len(found) > 0 {
			links := make([]model.UserAllergen, 0, len(found))
			for _, a := range found {
				links = append(links, model.UserAllergen{UserProfileID: profile.ID, AllergenID: a.ID})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link allergens: %w", err)
			}
		}

		return writeAudit(tx, profile.TableName(), operation, profile.ID, owner)
	})
	if err != nil {
		log.WithError(err).WithField("owner", owner).Error("profile update failed")
		return nil, err
	}

	return s.GetProfile(ctx, owner)
}

func (s *ProfileService) load(db *gorm.DB, owner string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := db.
		Preload("Allergens", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_allergens.allergen_id")
		}).
		Preload("Allergens.Allergen").
		Where("user_id = ?", owner).
		Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}
