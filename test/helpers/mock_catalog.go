package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// defKey identifies a blueprint definition by product and activity
type defKey struct {
	itemID   int64
	activity industry.Activity
}

// MockCatalog is a map-backed test double for the CatalogLookup interface
type MockCatalog struct {
	mu          sync.RWMutex
	definitions map[defKey]*industry.BlueprintDefinition
	inventions  map[int64]*industry.InventionCatalogEntry
	structures  map[int64]*industry.StructureBonus
	rigs        map[int64]*industry.RigBonus
	decryptors  []industry.Decryptor

	// Err, when set, is returned by every lookup
	Err error
}

// NewMockCatalog creates an empty mock catalog
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		definitions: make(map[defKey]*industry.BlueprintDefinition),
		inventions:  make(map[int64]*industry.InventionCatalogEntry),
		structures:  make(map[int64]*industry.StructureBonus),
		rigs:        make(map[int64]*industry.RigBonus),
	}
}

// AddDefinition registers a blueprint definition for its output item
func (m *MockCatalog) AddDefinition(def *industry.BlueprintDefinition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.definitions[defKey{def.OutputItemID, def.Activity}] = def
}

// AddInventionEntry registers invention catalog data for an item
func (m *MockCatalog) AddInventionEntry(entry *industry.InventionCatalogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventions[entry.ItemID] = entry
}

// AddStructureBonus registers a structure-tier bonus set
func (m *MockCatalog) AddStructureBonus(structureTypeID int64, bonus *industry.StructureBonus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structures[structureTypeID] = bonus
}

// AddRigBonus registers a rig bonus definition
func (m *MockCatalog) AddRigBonus(rigTypeID int64, bonus *industry.RigBonus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rigs[rigTypeID] = bonus
}

// AddDecryptor registers a decryptor for the invention search
func (m *MockCatalog) AddDecryptor(d industry.Decryptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decryptors = append(m.decryptors, d)
}

// GetDefinition returns the registered definition or nil
func (m *MockCatalog) GetDefinition(ctx context.Context, itemID int64, activity industry.Activity) (*industry.BlueprintDefinition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.definitions[defKey{itemID, activity}], nil
}

// GetInventionData returns the registered invention entry or nil
func (m *MockCatalog) GetInventionData(ctx context.Context, itemID int64) (*industry.InventionCatalogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.inventions[itemID], nil
}

// GetStructureBonus returns the registered structure bonus or nil
func (m *MockCatalog) GetStructureBonus(ctx context.Context, structureTypeID int64) (*industry.StructureBonus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.structures[structureTypeID], nil
}

// GetRigBonus returns the registered rig bonus or nil
func (m *MockCatalog) GetRigBonus(ctx context.Context, rigTypeID int64) (*industry.RigBonus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.rigs[rigTypeID], nil
}

// ListDecryptors returns every registered decryptor
func (m *MockCatalog) ListDecryptors(ctx context.Context) ([]industry.Decryptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.decryptors, nil
}
