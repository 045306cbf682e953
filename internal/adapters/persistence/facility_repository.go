package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// GormFacilityRepository implements industry.FacilityRepository
type GormFacilityRepository struct {
	db *gorm.DB
}

// NewGormFacilityRepository creates a new GORM facility repository
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// FindByID retrieves a facility by id
func (r *GormFacilityRepository) FindByID(ctx context.Context, facilityID string) (*industry.Facility, error) {
	var model FacilityModel
	result := r.db.WithContext(ctx).Where("facility_id = ?", facilityID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("facility not found: %s", facilityID)
		}
		return nil, fmt.Errorf("failed to find facility %s: %w", facilityID, result.Error)
	}
	return r.modelToFacility(&model)
}

// Save persists a facility definition
func (r *GormFacilityRepository) Save(ctx context.Context, facility *industry.Facility) error {
	rigs, err := json.Marshal(facility.RigTypeIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal rigs for facility %s: %w", facility.FacilityID, err)
	}
	model := FacilityModel{
		FacilityID:      facility.FacilityID,
		Name:            facility.Name,
		StructureTypeID: facility.StructureTypeID,
		SolarSystemID:   facility.SolarSystemID,
		SecurityZone:    string(facility.SecurityZone),
		TaxRate:         facility.TaxRate,
		Rigs:            string(rigs),
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save facility %s: %w", facility.FacilityID, err)
	}
	return nil
}

func (r *GormFacilityRepository) modelToFacility(model *FacilityModel) (*industry.Facility, error) {
	zone, err := industry.ParseSecurityZone(model.SecurityZone)
	if err != nil {
		return nil, fmt.Errorf("facility %s: %w", model.FacilityID, err)
	}

	facility, err := industry.NewFacility(model.FacilityID, model.StructureTypeID, model.SolarSystemID, zone, model.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("failed to convert facility %s: %w", model.FacilityID, err)
	}
	facility.Name = model.Name

	if model.Rigs != "" {
		var rigs []int64
		if err := json.Unmarshal([]byte(model.Rigs), &rigs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rigs for facility %s: %w", model.FacilityID, err)
		}
		for _, rigTypeID := range rigs {
			facility.AddRig(rigTypeID)
		}
	}
	return facility, nil
}
