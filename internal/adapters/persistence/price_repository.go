package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// GormPriceRepository implements industry.PriceLookup against the local
// market-price snapshot. A missing row is a missing price, not an error.
type GormPriceRepository struct {
	db *gorm.DB
}

// NewGormPriceRepository creates a new GORM price repository
func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// GetUnitPrice returns the market unit price for an item in a region
func (r *GormPriceRepository) GetUnitPrice(ctx context.Context, itemID, regionID int64, priceType industry.PriceType) (*float64, error) {
	var model MarketPriceModel
	result := r.db.WithContext(ctx).
		Where("item_id = ? AND region_id = ? AND price_type = ?", itemID, regionID, string(priceType)).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find price for item %d: %w", itemID, result.Error)
	}
	price := model.Price
	return &price, nil
}

// GetAdjustedPrice returns the pricing-engine valuation used for EIV
func (r *GormPriceRepository) GetAdjustedPrice(ctx context.Context, itemID int64) (*float64, error) {
	var model AdjustedPriceModel
	result := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find adjusted price for item %d: %w", itemID, result.Error)
	}
	price := model.Price
	return &price, nil
}

// GormCostIndexRepository implements industry.CostIndexLookup
type GormCostIndexRepository struct {
	db *gorm.DB
}

// NewGormCostIndexRepository creates a new GORM cost index repository
func NewGormCostIndexRepository(db *gorm.DB) *GormCostIndexRepository {
	return &GormCostIndexRepository{db: db}
}

// Get returns the system cost index for an activity. Systems without a
// recorded index read as zero, which zeroes the installation fee.
func (r *GormCostIndexRepository) Get(ctx context.Context, systemID int64, activity industry.Activity) (float64, error) {
	var model CostIndexModel
	result := r.db.WithContext(ctx).
		Where("system_id = ? AND activity = ?", systemID, string(activity)).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find cost index for system %d: %w", systemID, result.Error)
	}
	return model.CostIndex, nil
}
