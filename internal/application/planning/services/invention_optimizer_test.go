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

const (
	itemTech2Module int64 = 12042
	itemDatacore    int64 = 20424
	itemDecryptorA  int64 = 34201
	itemDecryptorB  int64 = 34202
)

func inventionCatalog() *helpers.MockCatalog {
	catalog := helpers.NewMockCatalog()
	catalog.AddInventionEntry(&industry.InventionCatalogEntry{
		ItemID:          itemTech2Module,
		BlueprintID:     12043,
		BaseProbability: 0.34,
		BaseRuns:        10,
		BaseME:          2,
		BaseTE:          4,
		Materials: []industry.MaterialRequirement{
			{ItemID: itemDatacore, Quantity: 2},
		},
		Skills: []industry.InventionSkillRequirement{
			{SkillName: "Amarr Encryption Methods", Role: "encryption"},
			{SkillName: "Laser Physics", Role: "science"},
			{SkillName: "Mechanical Engineering", Role: "science"},
		},
	})
	return catalog
}

func TestInventionOptimizer_BaselineProbability(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		Skills:   industry.InventionSkills{EncryptionLevel: 4, ScienceLevel1: 5, ScienceLevel2: 5},
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	baseline := result.Candidates[0]
	assert.Nil(t, baseline.Decryptor)
	// 0.34 * (1 + 4/40 + 10/30)
	assert.InDelta(t, 0.34*(1+0.1+1.0/3.0), baseline.Probability, 1e-9)
	assert.Equal(t, int64(10), baseline.Runs)
	assert.Equal(t, 2, baseline.ME)
	assert.Equal(t, 4, baseline.TE)
	assert.InDelta(t, 200.0, baseline.MaterialCost, 1e-9)
}

func TestInventionOptimizer_ProbabilityClampedToOne(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorA,
		Name:                  "Augmentation Decryptor",
		ProbabilityMultiplier: 5.0,
	})
	optimizer := services.NewInventionOptimizer(catalog, helpers.NewMockPriceLookup())

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		Skills:   industry.InventionSkills{EncryptionLevel: 5, ScienceLevel1: 5, ScienceLevel2: 5},
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	assert.LessOrEqual(t, result.Candidates[1].Probability, 1.0)
}

func TestInventionOptimizer_DecryptorShiftsRunsAndResearch(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorA,
		Name:                  "Accelerant Decryptor",
		ProbabilityMultiplier: 1.2,
		RunsModifier:          1,
		MEModifier:            2,
		TEModifier:            10,
	})
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorB,
		Name:                  "Attainment Decryptor",
		ProbabilityMultiplier: 1.8,
		RunsModifier:          4,
		MEModifier:            -1,
		TEModifier:            2,
	})
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)
	accelerant := result.Candidates[1]
	assert.Equal(t, int64(11), accelerant.Runs)
	assert.Equal(t, 4, accelerant.ME)
	assert.Equal(t, 14, accelerant.TE)
	attainment := result.Candidates[2]
	assert.Equal(t, int64(14), attainment.Runs)
	assert.Equal(t, 1, attainment.ME)
	assert.Equal(t, 6, attainment.TE)
}

func TestInventionOptimizer_MinCostPicksCheapestExpectedRun(t *testing.T) {
	// Arrange: the decryptor multiplies probability and runs enough to
	// beat the baseline even with its own purchase cost added.
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorB,
		Name:                  "Attainment Decryptor",
		ProbabilityMultiplier: 1.8,
		RunsModifier:          4,
	})
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	prices.SetUnitPrice(itemDecryptorB, testRegion, industry.PriceSell, 50.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result.Best.Decryptor)
	assert.Equal(t, itemDecryptorB, result.Best.Decryptor.ItemID)
	assert.Less(t, result.Best.Score, result.Candidates[0].Score)
}

func TestInventionOptimizer_MaxProfitMaximizesScore(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorA,
		Name:                  "Augmentation Decryptor",
		ProbabilityMultiplier: 0.6,
		RunsModifier:          9,
	})
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	prices.SetUnitPrice(itemDecryptorA, testRegion, industry.PriceSell, 50.0)
	prices.SetUnitPrice(itemTech2Module, testRegion, industry.PriceSell, 400.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyMaxProfit,
	})

	// Assert
	require.NoError(t, err)
	best := result.Best
	for _, candidate := range result.Candidates {
		assert.GreaterOrEqual(t, best.Score, candidate.Score)
	}
	// 0.34*0.6 prob * 19 runs * 400 - 250 beats 0.34 * 10 * 400 - 200
	require.NotNil(t, best.Decryptor)
	assert.Equal(t, itemDecryptorA, best.Decryptor.ItemID)
}

func TestInventionOptimizer_CustomVolumeRequiresPositiveVolume(t *testing.T) {
	// Arrange
	optimizer := services.NewInventionOptimizer(inventionCatalog(), helpers.NewMockPriceLookup())

	// Act
	_, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyCustomVolume,
	})

	// Assert
	var invalidErr *industry.ErrInvalidInput
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "customVolume", invalidErr.Field)
}

func TestInventionOptimizer_CustomVolumeNormalizesByProbability(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorA,
		Name:                  "Augmentation Decryptor",
		ProbabilityMultiplier: 2.0,
	})
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	prices.SetUnitPrice(itemDecryptorA, testRegion, industry.PriceSell, 50.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:       itemTech2Module,
		RegionID:     testRegion,
		Strategy:     industry.StrategyCustomVolume,
		CustomVolume: 1000,
	})

	// Assert
	require.NoError(t, err)
	baseline := result.Candidates[0]
	augmented := result.Candidates[1]
	assert.InDelta(t, 200.0/(0.34*1000), baseline.Score, 1e-9)
	assert.InDelta(t, 250.0/(0.68*1000), augmented.Score, 1e-9)
	// Doubled probability outweighs the decryptor price at this volume
	require.NotNil(t, result.Best.Decryptor)
	assert.Equal(t, itemDecryptorA, result.Best.Decryptor.ItemID)
}

func TestInventionOptimizer_NotInventable(t *testing.T) {
	// Arrange
	optimizer := services.NewInventionOptimizer(helpers.NewMockCatalog(), helpers.NewMockPriceLookup())

	// Act
	_, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   999,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	var noDataErr *industry.ErrNoInventionData
	require.ErrorAs(t, err, &noDataErr)
	assert.Equal(t, int64(999), noDataErr.ItemID)
}

func TestInventionOptimizer_DecryptorPriceEntersMaterialCost(t *testing.T) {
	// Arrange
	catalog := inventionCatalog()
	catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemDecryptorA,
		Name:                  "Parity Decryptor",
		ProbabilityMultiplier: 1.0,
	})
	prices := helpers.NewMockPriceLookup()
	prices.SetUnitPrice(itemDatacore, testRegion, industry.PriceSell, 100.0)
	prices.SetUnitPrice(itemDecryptorA, testRegion, industry.PriceSell, 75.0)
	optimizer := services.NewInventionOptimizer(catalog, prices)

	// Act
	result, err := optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemTech2Module,
		RegionID: testRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	assert.InDelta(t, 200.0, result.Candidates[0].MaterialCost, 1e-9)
	assert.InDelta(t, 275.0, result.Candidates[1].MaterialCost, 1e-9)
	// Identical probability and runs, so the added decryptor price can
	// only hurt the cost-per-run objective. The baseline must win.
	assert.Nil(t, result.Best.Decryptor)
}
