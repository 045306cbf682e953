package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// GormCatalogRepository implements industry.CatalogLookup using GORM.
// All lookups are pure reads; the reference data is written out-of-band
// by whatever imports the static game export.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetDefinition returns the blueprint producing itemID under the given
// activity, or nil when no such blueprint exists.
func (r *GormCatalogRepository) GetDefinition(ctx context.Context, itemID int64, activity industry.Activity) (*industry.BlueprintDefinition, error) {
	var model BlueprintModel
	result := r.db.WithContext(ctx).
		Where("output_item_id = ? AND activity = ?", itemID, string(activity)).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find blueprint for item %d: %w", itemID, result.Error)
	}

	var materials []BlueprintMaterialModel
	if err := r.db.WithContext(ctx).
		Where("blueprint_id = ?", model.BlueprintID).
		Order("item_id").
		Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to load materials for blueprint %d: %w", model.BlueprintID, err)
	}

	def := &industry.BlueprintDefinition{
		BlueprintID:    model.BlueprintID,
		Activity:       industry.Activity(model.Activity),
		OutputItemID:   model.OutputItemID,
		OutputQuantity: model.OutputQuantity,
		BaseTimeSec:    model.BaseTimeSec,
		MaxMELevel:     model.MaxMELevel,
		MaxTELevel:     model.MaxTELevel,
		Materials:      make([]industry.MaterialRequirement, 0, len(materials)),
	}
	for _, mat := range materials {
		def.Materials = append(def.Materials, industry.MaterialRequirement{
			ItemID:     mat.ItemID,
			CategoryID: mat.CategoryID,
			Quantity:   mat.Quantity,
		})
	}
	return def, nil
}

// GetInventionData returns the invention entry for an item, or nil when
// the item is not inventable.
func (r *GormCatalogRepository) GetInventionData(ctx context.Context, itemID int64) (*industry.InventionCatalogEntry, error) {
	var model InventionModel
	result := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find invention data for item %d: %w", itemID, result.Error)
	}

	var materials []InventionMaterialModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("material_item_id").
		Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to load invention materials for item %d: %w", itemID, err)
	}

	var skills []InventionSkillModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id").
		Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to load invention skills for item %d: %w", itemID, err)
	}

	entry := &industry.InventionCatalogEntry{
		ItemID:          model.ItemID,
		BlueprintID:     model.BlueprintID,
		BaseProbability: model.BaseProbability,
		BaseRuns:        model.BaseRuns,
		BaseME:          model.BaseMELevel,
		BaseTE:          model.BaseTELevel,
	}
	for _, mat := range materials {
		entry.Materials = append(entry.Materials, industry.MaterialRequirement{
			ItemID:     mat.MaterialItemID,
			CategoryID: mat.CategoryID,
			Quantity:   mat.Quantity,
		})
	}
	for _, skill := range skills {
		entry.Skills = append(entry.Skills, industry.InventionSkillRequirement{
			SkillName: skill.SkillName,
			Role:      skill.Role,
		})
	}
	return entry, nil
}

// GetStructureBonus returns the fixed bonus set of a structure tier.
// Unknown structure types yield a zero bonus set rather than an error so
// that facilities referencing unseeded structures degrade gracefully.
func (r *GormCatalogRepository) GetStructureBonus(ctx context.Context, structureTypeID int64) (*industry.StructureBonus, error) {
	var model StructureModel
	result := r.db.WithContext(ctx).Where("structure_type_id = ?", structureTypeID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find structure %d: %w", structureTypeID, result.Error)
	}
	return &industry.StructureBonus{
		MaterialBonusPct: model.MaterialBonusPct,
		TimeBonusPct:     model.TimeBonusPct,
		CostBonusPct:     model.CostBonusPct,
	}, nil
}

// GetRigBonus returns the bonus definition of a rig, or nil when unknown
func (r *GormCatalogRepository) GetRigBonus(ctx context.Context, rigTypeID int64) (*industry.RigBonus, error) {
	var model RigModel
	result := r.db.WithContext(ctx).Where("rig_type_id = ?", rigTypeID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rig %d: %w", rigTypeID, result.Error)
	}
	return &industry.RigBonus{
		AffectedCategoryID: model.AffectedCategoryID,
		MaterialBonusPct:   model.MaterialBonusPct,
		TimeBonusPct:       model.TimeBonusPct,
	}, nil
}

// ListDecryptors returns every decryptor in the catalog in id order
func (r *GormCatalogRepository) ListDecryptors(ctx context.Context) ([]industry.Decryptor, error) {
	var models []DecryptorModel
	if err := r.db.WithContext(ctx).Order("item_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list decryptors: %w", err)
	}
	decryptors := make([]industry.Decryptor, 0, len(models))
	for _, model := range models {
		decryptors = append(decryptors, industry.Decryptor{
			ItemID:                model.ItemID,
			Name:                  model.Name,
			ProbabilityMultiplier: model.ProbabilityMultiplier,
			RunsModifier:          model.RunsModifier,
			MEModifier:            model.MEModifier,
			TEModifier:            model.TEModifier,
		})
	}
	return decryptors, nil
}
