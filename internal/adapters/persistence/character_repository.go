package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// GormSkillRepository implements industry.TaxProfile. Untrained skills
// read as level zero.
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new GORM skill repository
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

// GetSkillLevel returns the character's level (0..5) in the named skill
func (r *GormSkillRepository) GetSkillLevel(ctx context.Context, characterID int64, skillName string) (int, error) {
	var model CharacterSkillModel
	result := r.db.WithContext(ctx).
		Where("character_id = ? AND skill_name = ?", characterID, skillName).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find skill %s for character %d: %w", skillName, characterID, result.Error)
	}
	return model.Level, nil
}

// GormOwnedBlueprintRepository implements industry.OwnedBlueprintLookup
type GormOwnedBlueprintRepository struct {
	db *gorm.DB
}

// NewGormOwnedBlueprintRepository creates a new owned-blueprint repository
func NewGormOwnedBlueprintRepository(db *gorm.DB) *GormOwnedBlueprintRepository {
	return &GormOwnedBlueprintRepository{db: db}
}

// GetOwnedLevels returns the research levels of a blueprint copy the
// character owns, or nil when they own none.
func (r *GormOwnedBlueprintRepository) GetOwnedLevels(ctx context.Context, characterID, blueprintID int64) (*industry.OwnedBlueprintLevels, error) {
	var model OwnedBlueprintModel
	result := r.db.WithContext(ctx).
		Where("character_id = ? AND blueprint_id = ?", characterID, blueprintID).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find owned blueprint %d for character %d: %w", blueprintID, characterID, result.Error)
	}
	return &industry.OwnedBlueprintLevels{
		MELevel: model.MELevel,
		TELevel: model.TELevel,
	}, nil
}
