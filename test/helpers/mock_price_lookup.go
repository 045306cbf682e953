package helpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// priceKey identifies a market quote
type priceKey struct {
	itemID    int64
	regionID  int64
	priceType industry.PriceType
}

// MockPriceLookup is a map-backed test double for the PriceLookup interface
type MockPriceLookup struct {
	mu       sync.RWMutex
	prices   map[priceKey]float64
	adjusted map[int64]float64
}

// NewMockPriceLookup creates an empty mock price lookup
func NewMockPriceLookup() *MockPriceLookup {
	return &MockPriceLookup{
		prices:   make(map[priceKey]float64),
		adjusted: make(map[int64]float64),
	}
}

// SetUnitPrice registers a market quote
func (m *MockPriceLookup) SetUnitPrice(itemID, regionID int64, priceType industry.PriceType, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[priceKey{itemID, regionID, priceType}] = price
}

// SetAdjustedPrice registers a pricing-engine valuation
func (m *MockPriceLookup) SetAdjustedPrice(itemID int64, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjusted[itemID] = price
}

// GetUnitPrice returns the registered quote, or nil when there is none
func (m *MockPriceLookup) GetUnitPrice(ctx context.Context, itemID, regionID int64, priceType industry.PriceType) (*float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if price, ok := m.prices[priceKey{itemID, regionID, priceType}]; ok {
		return &price, nil
	}
	return nil, nil
}

// GetAdjustedPrice returns the registered valuation, or nil
func (m *MockPriceLookup) GetAdjustedPrice(ctx context.Context, itemID int64) (*float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if price, ok := m.adjusted[itemID]; ok {
		return &price, nil
	}
	return nil, nil
}

// MockCostIndexLookup is a map-backed test double for CostIndexLookup
type MockCostIndexLookup struct {
	mu      sync.RWMutex
	indexes map[int64]float64
}

// NewMockCostIndexLookup creates an empty mock cost-index lookup
func NewMockCostIndexLookup() *MockCostIndexLookup {
	return &MockCostIndexLookup{indexes: make(map[int64]float64)}
}

// SetIndex registers the cost index of a solar system
func (m *MockCostIndexLookup) SetIndex(systemID int64, index float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexes[systemID] = index
}

// Get returns the registered index, or zero when none is known
func (m *MockCostIndexLookup) Get(ctx context.Context, systemID int64, activity industry.Activity) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexes[systemID], nil
}

// MockTaxProfile is a map-backed test double for TaxProfile
type MockTaxProfile struct {
	mu     sync.RWMutex
	skills map[int64]map[string]int
}

// NewMockTaxProfile creates an empty mock tax profile
func NewMockTaxProfile() *MockTaxProfile {
	return &MockTaxProfile{skills: make(map[int64]map[string]int)}
}

// SetSkill registers a trained skill level for a character
func (m *MockTaxProfile) SetSkill(characterID int64, skillName string, level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.skills[characterID] == nil {
		m.skills[characterID] = make(map[string]int)
	}
	m.skills[characterID][skillName] = level
}

// GetSkillLevel returns the trained level, or zero when untrained
func (m *MockTaxProfile) GetSkillLevel(ctx context.Context, characterID int64, skillName string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.skills[characterID][skillName], nil
}

// ownedKey identifies an owned blueprint copy
type ownedKey struct {
	characterID int64
	blueprintID int64
}

// MockOwnedBlueprints is a map-backed test double for OwnedBlueprintLookup
type MockOwnedBlueprints struct {
	mu    sync.RWMutex
	owned map[ownedKey]*industry.OwnedBlueprintLevels
}

// NewMockOwnedBlueprints creates an empty mock owned-blueprint lookup
func NewMockOwnedBlueprints() *MockOwnedBlueprints {
	return &MockOwnedBlueprints{owned: make(map[ownedKey]*industry.OwnedBlueprintLevels)}
}

// SetOwned registers a researched copy for a character
func (m *MockOwnedBlueprints) SetOwned(characterID, blueprintID int64, meLevel, teLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owned[ownedKey{characterID, blueprintID}] = &industry.OwnedBlueprintLevels{
		MELevel: meLevel,
		TELevel: teLevel,
	}
}

// GetOwnedLevels returns the registered copy, or nil when none is owned
func (m *MockOwnedBlueprints) GetOwnedLevels(ctx context.Context, characterID, blueprintID int64) (*industry.OwnedBlueprintLevels, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.owned[ownedKey{characterID, blueprintID}], nil
}

// MockFacilityRepository is a map-backed test double for FacilityRepository
type MockFacilityRepository struct {
	mu         sync.RWMutex
	facilities map[string]*industry.Facility
}

// NewMockFacilityRepository creates an empty mock facility repository
func NewMockFacilityRepository() *MockFacilityRepository {
	return &MockFacilityRepository{facilities: make(map[string]*industry.Facility)}
}

// AddFacility registers a facility
func (m *MockFacilityRepository) AddFacility(facility *industry.Facility) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facilities[facility.FacilityID] = facility
}

// FindByID retrieves a facility by id
func (m *MockFacilityRepository) FindByID(ctx context.Context, facilityID string) (*industry.Facility, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	facility, ok := m.facilities[facilityID]
	if !ok {
		return nil, fmt.Errorf("facility not found: %s", facilityID)
	}
	return facility, nil
}
