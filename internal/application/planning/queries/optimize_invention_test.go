package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/industry-go/internal/application/planning/queries"
	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
	"github.com/andrescamacho/industry-go/test/helpers"
)

const itemTech2Module int64 = 12042

type inventionFixture struct {
	catalog *helpers.MockCatalog
	prices  *helpers.MockPriceLookup
	profile *helpers.MockTaxProfile
	handler *queries.OptimizeInventionHandler
}

func newInventionFixture() *inventionFixture {
	catalog := helpers.NewMockCatalog()
	catalog.AddInventionEntry(&industry.InventionCatalogEntry{
		ItemID:          itemTech2Module,
		BlueprintID:     12043,
		BaseProbability: 0.34,
		BaseRuns:        10,
		BaseME:          2,
		BaseTE:          4,
		Skills: []industry.InventionSkillRequirement{
			{SkillName: "Amarr Encryption Methods", Role: "encryption"},
			{SkillName: "Laser Physics", Role: "science"},
			{SkillName: "Mechanical Engineering", Role: "science"},
		},
	})

	prices := helpers.NewMockPriceLookup()
	profile := helpers.NewMockTaxProfile()
	optimizer := services.NewInventionOptimizer(catalog, prices)

	return &inventionFixture{
		catalog: catalog,
		prices:  prices,
		profile: profile,
		handler: queries.NewOptimizeInventionHandler(optimizer, catalog, profile),
	}
}

func TestOptimizeInvention_UnskilledBaseline(t *testing.T) {
	// Arrange
	fixture := newInventionFixture()

	// Act
	response, err := fixture.handler.Handle(context.Background(), &queries.OptimizeInventionQuery{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.OptimizeInventionResponse).Result
	assert.Equal(t, itemTech2Module, result.ItemID)
	assert.Equal(t, 0.34, result.BaseProbability)
	require.Len(t, result.Candidates, 1)
	// No character means no skill bonus at all
	assert.InDelta(t, 0.34, result.Candidates[0].Probability, 1e-9)
}

func TestOptimizeInvention_CharacterSkillsRaiseProbability(t *testing.T) {
	// Arrange
	fixture := newInventionFixture()
	fixture.profile.SetSkill(90000001, "Amarr Encryption Methods", 4)
	fixture.profile.SetSkill(90000001, "Laser Physics", 5)
	fixture.profile.SetSkill(90000001, "Mechanical Engineering", 3)

	// Act
	response, err := fixture.handler.Handle(context.Background(), &queries.OptimizeInventionQuery{
		ItemID:      itemTech2Module,
		CharacterID: 90000001,
		RegionID:    testRegion,
		Strategy:    industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.OptimizeInventionResponse).Result
	// 0.34 * (1 + 4/40 + (5+3)/30)
	expected := 0.34 * (1 + 4.0/40.0 + 8.0/30.0)
	assert.InDelta(t, expected, result.Best.Probability, 1e-9)
}

func TestOptimizeInvention_NotInventable(t *testing.T) {
	// Arrange
	fixture := newInventionFixture()

	// Act
	_, err := fixture.handler.Handle(context.Background(), &queries.OptimizeInventionQuery{
		ItemID:   999,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	var noDataErr *industry.ErrNoInventionData
	require.ErrorAs(t, err, &noDataErr)
}
