package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
	"github.com/andrescamacho/industry-go/test/helpers"
)

// inventionContext holds state for decryptor optimization scenarios
type inventionContext struct {
	catalog *helpers.MockCatalog
	prices  *helpers.MockPriceLookup
	entries map[int64]*industry.InventionCatalogEntry

	result *industry.InventionResult
	err    error
}

func (ic *inventionContext) reset() {
	ic.catalog = helpers.NewMockCatalog()
	ic.prices = helpers.NewMockPriceLookup()
	ic.entries = make(map[int64]*industry.InventionCatalogEntry)
	ic.result = nil
	ic.err = nil
}

func InitializeInventionScenario(ctx *godog.ScenarioContext) {
	ic := &inventionContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ic.reset()
		return ctx, nil
	})

	ctx.Step(`^item (\d+) can be invented at a base probability of ([\d.]+) with (\d+) runs$`, ic.itemCanBeInvented)
	ctx.Step(`^inventing item (\d+) consumes (\d+) units? of invention material (\d+)$`, ic.inventingConsumes)
	ctx.Step(`^invention material (\d+) is priced at ([\d.]+)$`, ic.inventionMaterialPriced)
	ctx.Step(`^a decryptor (\d+) multiplying probability by ([\d.]+) adding (\d+) runs priced at ([\d.]+)$`, ic.aDecryptor)

	ctx.Step(`^I optimize invention for item (\d+) minimizing cost$`, ic.iOptimizeMinimizingCost)

	ctx.Step(`^the best choice should be no decryptor$`, ic.theBestShouldBeNoDecryptor)
	ctx.Step(`^the best choice should be decryptor (\d+)$`, ic.theBestShouldBeDecryptor)
	ctx.Step(`^the best probability should be ([\d.]+)$`, ic.theBestProbabilityShouldBe)
	ctx.Step(`^the optimization should fail with no invention data$`, ic.theOptimizationShouldFailNoData)
}

func (ic *inventionContext) itemCanBeInvented(itemID int64, probability float64, runs int64) error {
	entry := &industry.InventionCatalogEntry{
		ItemID:          itemID,
		BlueprintID:     itemID + 1,
		BaseProbability: probability,
		BaseRuns:        runs,
		BaseME:          2,
		BaseTE:          4,
	}
	ic.entries[itemID] = entry
	ic.catalog.AddInventionEntry(entry)
	return nil
}

func (ic *inventionContext) inventingConsumes(itemID, quantity, materialItemID int64) error {
	entry, ok := ic.entries[itemID]
	if !ok {
		return fmt.Errorf("item %d has no invention entry", itemID)
	}
	entry.Materials = append(entry.Materials, industry.MaterialRequirement{
		ItemID:   materialItemID,
		Quantity: quantity,
	})
	return nil
}

func (ic *inventionContext) inventionMaterialPriced(itemID int64, price float64) error {
	ic.prices.SetUnitPrice(itemID, planningRegion, industry.PriceSell, price)
	return nil
}

func (ic *inventionContext) aDecryptor(itemID int64, probMultiplier float64, runsModifier int64, price float64) error {
	ic.catalog.AddDecryptor(industry.Decryptor{
		ItemID:                itemID,
		Name:                  fmt.Sprintf("Decryptor %d", itemID),
		ProbabilityMultiplier: probMultiplier,
		RunsModifier:          runsModifier,
	})
	ic.prices.SetUnitPrice(itemID, planningRegion, industry.PriceSell, price)
	return nil
}

func (ic *inventionContext) iOptimizeMinimizingCost(itemID int64) error {
	optimizer := services.NewInventionOptimizer(ic.catalog, ic.prices)
	ic.result, ic.err = optimizer.Optimize(context.Background(), services.OptimizeRequest{
		ItemID:   itemID,
		RegionID: planningRegion,
		Strategy: industry.StrategyMinCostPerUnit,
	})
	return nil
}

func (ic *inventionContext) theBestShouldBeNoDecryptor() error {
	if ic.err != nil {
		return fmt.Errorf("optimization failed: %w", ic.err)
	}
	if ic.result.Best.Decryptor != nil {
		return fmt.Errorf("expected no decryptor but got %s", ic.result.Best.Decryptor.Name)
	}
	return nil
}

func (ic *inventionContext) theBestShouldBeDecryptor(itemID int64) error {
	if ic.err != nil {
		return fmt.Errorf("optimization failed: %w", ic.err)
	}
	if ic.result.Best.Decryptor == nil {
		return fmt.Errorf("expected decryptor %d but the baseline won", itemID)
	}
	if ic.result.Best.Decryptor.ItemID != itemID {
		return fmt.Errorf("expected decryptor %d but got %d", itemID, ic.result.Best.Decryptor.ItemID)
	}
	return nil
}

func (ic *inventionContext) theBestProbabilityShouldBe(expected float64) error {
	if ic.err != nil {
		return fmt.Errorf("optimization failed: %w", ic.err)
	}
	return approxEqual("best probability", expected, ic.result.Best.Probability)
}

func (ic *inventionContext) theOptimizationShouldFailNoData() error {
	if ic.err == nil {
		return fmt.Errorf("expected a no-invention-data error but the optimization succeeded")
	}
	var noDataErr *industry.ErrNoInventionData
	if !errors.As(ic.err, &noDataErr) {
		return fmt.Errorf("expected a no-invention-data error but got: %v", ic.err)
	}
	return nil
}
