package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
	"github.com/andrescamacho/industry-go/test/helpers"
)

func newFacility(t *testing.T, zone industry.SecurityZone, structureTypeID int64, rigs ...int64) *industry.Facility {
	t.Helper()
	facility, err := industry.NewFacility("TEST-FAC", structureTypeID, 30000142, zone, 0.01)
	require.NoError(t, err)
	for _, rig := range rigs {
		facility.AddRig(rig)
	}
	return facility
}

func TestBonusResolver_ResearchOnly(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	resolver := services.NewBonusResolver(catalog)
	eff, err := industry.NewEfficiencyState(10, 20)
	require.NoError(t, err)

	// Act
	bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, nil)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 0.90, bonuses.MaterialMultiplier(0), 1e-9)
	assert.InDelta(t, 0.80, bonuses.TimeMultiplier(), 1e-9)
	assert.InDelta(t, 1.0, bonuses.CostMultiplier(), 1e-9)
}

func TestBonusResolver_StructureAndRigStack(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	catalog.AddStructureBonus(35825, &industry.StructureBonus{MaterialBonusPct: 1, TimeBonusPct: 15, CostBonusPct: 3})
	catalog.AddRigBonus(43920, &industry.RigBonus{AffectedCategoryID: 4, MaterialBonusPct: 2, TimeBonusPct: 20})
	resolver := services.NewBonusResolver(catalog)
	facility := newFacility(t, industry.SecurityHigh, 35825, 43920)
	eff, err := industry.NewEfficiencyState(0, 0)
	require.NoError(t, err)

	// Act
	bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, facility)

	// Assert
	require.NoError(t, err)
	// 1 - 0.01 structure - 0.02 rig at high-sec multiplier 1.0
	assert.InDelta(t, 0.97, bonuses.MaterialMultiplier(4), 1e-9)
	// The rig only affects its own category
	assert.InDelta(t, 0.99, bonuses.MaterialMultiplier(7), 1e-9)
	assert.InDelta(t, 0.65, bonuses.TimeMultiplier(), 1e-9)
	assert.InDelta(t, 0.97, bonuses.CostMultiplier(), 1e-9)
}

func TestBonusResolver_SecurityZoneScalesRigsOnly(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	catalog.AddStructureBonus(35825, &industry.StructureBonus{MaterialBonusPct: 1})
	catalog.AddRigBonus(43920, &industry.RigBonus{AffectedCategoryID: 4, MaterialBonusPct: 2})
	resolver := services.NewBonusResolver(catalog)
	eff, err := industry.NewEfficiencyState(0, 0)
	require.NoError(t, err)

	cases := []struct {
		zone     industry.SecurityZone
		expected float64
	}{
		{industry.SecurityHigh, 1 - 0.01 - 0.02*1.0},
		{industry.SecurityLow, 1 - 0.01 - 0.02*1.9},
		{industry.SecurityNull, 1 - 0.01 - 0.02*2.1},
	}

	for _, tc := range cases {
		// Act
		facility := newFacility(t, tc.zone, 35825, 43920)
		bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, facility)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, tc.expected, bonuses.MaterialMultiplier(4), 1e-9, "zone %s", tc.zone)
	}
}

func TestBonusResolver_MaterialMultiplierFloor(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	catalog.AddStructureBonus(35827, &industry.StructureBonus{MaterialBonusPct: 50, TimeBonusPct: 99})
	catalog.AddRigBonus(43920, &industry.RigBonus{AffectedCategoryID: 4, MaterialBonusPct: 40, TimeBonusPct: 40})
	resolver := services.NewBonusResolver(catalog)
	facility := newFacility(t, industry.SecurityNull, 35827, 43920)
	eff, err := industry.NewEfficiencyState(10, 20)
	require.NoError(t, err)

	// Act
	bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, facility)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 0.01, bonuses.MaterialMultiplier(4), 1e-9)
	assert.InDelta(t, 0.01, bonuses.TimeMultiplier(), 1e-9)
}

func TestBonusResolver_UnknownStructureAndRigsDegradeGracefully(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	resolver := services.NewBonusResolver(catalog)
	facility := newFacility(t, industry.SecurityHigh, 99999, 88888)
	eff, err := industry.NewEfficiencyState(5, 0)
	require.NoError(t, err)

	// Act
	bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, facility)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 0.95, bonuses.MaterialMultiplier(4), 1e-9)
}

func TestBonusResolver_MonotonicInMELevel(t *testing.T) {
	// Arrange
	catalog := helpers.NewMockCatalog()
	resolver := services.NewBonusResolver(catalog)

	previous := 2.0
	for me := 0; me <= industry.MaxMELevel; me++ {
		eff, err := industry.NewEfficiencyState(me, 0)
		require.NoError(t, err)

		// Act
		bonuses, err := resolver.Resolve(context.Background(), &industry.BlueprintDefinition{}, eff, nil)

		// Assert
		require.NoError(t, err)
		multiplier := bonuses.MaterialMultiplier(0)
		assert.Less(t, multiplier, previous, "ME%d should reduce the multiplier", me)
		previous = multiplier
	}
}
