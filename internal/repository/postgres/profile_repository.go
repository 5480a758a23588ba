package postgres

import (
	"context"
	"errors"
	"fmt"

	"eventScout/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		DB: db,
	}
}

// GetProfile returns (profile, found, error); a missing row is not an error.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uint) (domain.PersonaProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.PersonaProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	var profile domain.PersonaProfile

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PersonaProfile{}, false, nil
		}
		return domain.PersonaProfile{}, false, fmt.Errorf("failed to find persona profile: %w", err)
	}

	return profile, true, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile domain.PersonaProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert persona profile: %w", err)
	}

	return nil
}
