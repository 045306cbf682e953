package steps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
	"github.com/andrescamacho/industry-go/test/helpers"
)

const (
	planningRegion    int64 = 10000002
	planningStructure int64 = 35825
	planningSystem    int64 = 30000142
)

// planningContext holds state for expansion and costing scenarios
type planningContext struct {
	catalog   *helpers.MockCatalog
	prices    *helpers.MockPriceLookup
	indexes   *helpers.MockCostIndexLookup
	defs      map[int64]*industry.BlueprintDefinition
	facility  *industry.Facility
	nextRigID int64

	result    *services.ExpansionResult
	breakdown *industry.CostBreakdown
	err       error
}

func (pc *planningContext) reset() {
	pc.catalog = helpers.NewMockCatalog()
	pc.prices = helpers.NewMockPriceLookup()
	pc.indexes = helpers.NewMockCostIndexLookup()
	pc.defs = make(map[int64]*industry.BlueprintDefinition)
	pc.facility = nil
	pc.nextRigID = 43920
	pc.result = nil
	pc.breakdown = nil
	pc.err = nil
}

func InitializePlanningScenario(ctx *godog.ScenarioContext) {
	pc := &planningContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Catalog setup
	ctx.Step(`^a manufacturing blueprint (\d+) producing (\d+) units? of item (\d+) in (\d+) seconds$`, pc.aManufacturingBlueprint)
	ctx.Step(`^blueprint (\d+) consumes (\d+) units? of item (\d+) in category (\d+) per run$`, pc.blueprintConsumes)

	// Facility setup
	ctx.Step(`^a facility anchored in (high|low|null) security space with a ([\d.]+)% tax rate$`, pc.aFacility)
	ctx.Step(`^the facility structure grants a ([\d.]+)% material bonus$`, pc.structureGrantsMaterialBonus)
	ctx.Step(`^the facility has a rig granting a ([\d.]+)% material bonus for category (\d+)$`, pc.facilityHasRig)

	// Price setup
	ctx.Step(`^item (\d+) sells for ([\d.]+)$`, pc.itemSellsFor)
	ctx.Step(`^item (\d+) has an adjusted price of ([\d.]+)$`, pc.itemHasAdjustedPrice)
	ctx.Step(`^the cost index of system (\d+) is ([\d.]+)$`, pc.costIndexOfSystem)

	// Actions
	ctx.Step(`^I expand item (\d+) for (\d+) runs? at ME (\d+) and TE (\d+)$`, pc.iExpandItem)
	ctx.Step(`^I expand item (\d+) for (\d+) runs? buying item (\d+)$`, pc.iExpandItemBuying)
	ctx.Step(`^I price a plan for item (\d+) for (\d+) runs?$`, pc.iPriceAPlan)

	// Assertions
	ctx.Step(`^the plan should require (\d+) units? of item (\d+)$`, pc.thePlanShouldRequire)
	ctx.Step(`^the plan should take (\d+) seconds$`, pc.thePlanShouldTake)
	ctx.Step(`^item (\d+) should be built with (\d+) runs$`, pc.itemShouldBeBuiltWithRuns)
	ctx.Step(`^the expansion should fail with a cyclic dependency$`, pc.theExpansionShouldFailCyclic)
	ctx.Step(`^the material cost should be ([\d.]+)$`, pc.theMaterialCostShouldBe)
	ctx.Step(`^the output value should be ([\d.]+)$`, pc.theOutputValueShouldBe)
	ctx.Step(`^(\d+) items? should have no price$`, pc.itemsShouldHaveNoPrice)
	ctx.Step(`^the total job cost should be ([\d.]+)$`, pc.theTotalJobCostShouldBe)
}

func (pc *planningContext) aManufacturingBlueprint(blueprintID, outputQty, itemID, seconds int64) error {
	def := &industry.BlueprintDefinition{
		BlueprintID:    blueprintID,
		Activity:       industry.ActivityManufacturing,
		OutputItemID:   itemID,
		OutputQuantity: outputQty,
		BaseTimeSec:    seconds,
		MaxMELevel:     industry.MaxMELevel,
		MaxTELevel:     industry.MaxTELevel,
	}
	pc.defs[blueprintID] = def
	pc.catalog.AddDefinition(def)
	return nil
}

func (pc *planningContext) blueprintConsumes(blueprintID, quantity, itemID, categoryID int64) error {
	def, ok := pc.defs[blueprintID]
	if !ok {
		return fmt.Errorf("unknown blueprint %d", blueprintID)
	}
	def.Materials = append(def.Materials, industry.MaterialRequirement{
		ItemID:     itemID,
		CategoryID: categoryID,
		Quantity:   quantity,
	})
	return nil
}

func (pc *planningContext) aFacility(zone string, taxPct float64) error {
	parsed, err := industry.ParseSecurityZone(zone)
	if err != nil {
		return err
	}
	facility, err := industry.NewFacility("BDD-FACILITY", planningStructure, planningSystem, parsed, taxPct/100.0)
	if err != nil {
		return err
	}
	pc.facility = facility
	return nil
}

func (pc *planningContext) structureGrantsMaterialBonus(bonusPct float64) error {
	pc.catalog.AddStructureBonus(planningStructure, &industry.StructureBonus{MaterialBonusPct: bonusPct})
	return nil
}

func (pc *planningContext) facilityHasRig(bonusPct float64, categoryID int64) error {
	if pc.facility == nil {
		return fmt.Errorf("no facility defined")
	}
	rigID := pc.nextRigID
	pc.nextRigID++
	pc.catalog.AddRigBonus(rigID, &industry.RigBonus{
		AffectedCategoryID: categoryID,
		MaterialBonusPct:   bonusPct,
	})
	pc.facility.AddRig(rigID)
	return nil
}

func (pc *planningContext) itemSellsFor(itemID int64, price float64) error {
	pc.prices.SetUnitPrice(itemID, planningRegion, industry.PriceSell, price)
	return nil
}

func (pc *planningContext) itemHasAdjustedPrice(itemID int64, price float64) error {
	pc.prices.SetAdjustedPrice(itemID, price)
	return nil
}

func (pc *planningContext) costIndexOfSystem(systemID int64, index float64) error {
	pc.indexes.SetIndex(systemID, index)
	return nil
}

func (pc *planningContext) expander() *services.BOMExpander {
	return services.NewBOMExpander(pc.catalog, services.NewBonusResolver(pc.catalog), nil)
}

func (pc *planningContext) iExpandItem(itemID, runs int64, me, te int) error {
	eff, err := industry.NewEfficiencyState(me, te)
	if err != nil {
		return err
	}
	pc.result, pc.err = pc.expander().Expand(context.Background(), services.ExpandRequest{
		ItemID:     itemID,
		Runs:       runs,
		Efficiency: eff,
		Facility:   pc.facility,
		Activity:   industry.ActivityManufacturing,
	})
	return nil
}

func (pc *planningContext) iExpandItemBuying(itemID, runs, buyItemID int64) error {
	pc.result, pc.err = pc.expander().Expand(context.Background(), services.ExpandRequest{
		ItemID:   itemID,
		Runs:     runs,
		Activity: industry.ActivityManufacturing,
		Policy:   services.BuyListPolicy(buyItemID),
	})
	return nil
}

func (pc *planningContext) iPriceAPlan(itemID, runs int64) error {
	if err := pc.iExpandItem(itemID, runs, 0, 0); err != nil {
		return err
	}
	if pc.err != nil {
		return fmt.Errorf("expansion failed: %w", pc.err)
	}

	bonuses := services.NewBonusResolver(pc.catalog)
	costMultiplier := 1.0
	if pc.facility != nil {
		set, err := bonuses.Resolve(context.Background(), pc.result.RootDefinition, industry.EfficiencyState{}, pc.facility)
		if err != nil {
			return err
		}
		costMultiplier = set.CostMultiplier()
	}

	calculator := services.NewCostCalculator(pc.prices, pc.indexes, helpers.NewMockTaxProfile(), services.DefaultTradeFeeRates())
	pc.breakdown, pc.err = calculator.Price(context.Background(), services.PricingRequest{
		Result:         pc.result,
		Runs:           runs,
		Activity:       industry.ActivityManufacturing,
		Facility:       pc.facility,
		CostMultiplier: costMultiplier,
		RegionID:       planningRegion,
	})
	return pc.err
}

func (pc *planningContext) thePlanShouldRequire(quantity, itemID int64) error {
	if pc.err != nil {
		return fmt.Errorf("expansion failed: %w", pc.err)
	}
	actual := pc.result.FlatMaterials[itemID]
	if actual != quantity {
		return fmt.Errorf("expected %d units of item %d but got %d", quantity, itemID, actual)
	}
	return nil
}

func (pc *planningContext) thePlanShouldTake(seconds int64) error {
	if pc.err != nil {
		return fmt.Errorf("expansion failed: %w", pc.err)
	}
	if pc.result.TotalSeconds != seconds {
		return fmt.Errorf("expected %d seconds but got %d", seconds, pc.result.TotalSeconds)
	}
	return nil
}

func (pc *planningContext) itemShouldBeBuiltWithRuns(itemID, runs int64) error {
	if pc.err != nil {
		return fmt.Errorf("expansion failed: %w", pc.err)
	}
	node := findNode(pc.result.Root, itemID)
	if node == nil {
		return fmt.Errorf("item %d not found in the tree", itemID)
	}
	if !node.IsIntermediate {
		return fmt.Errorf("item %d is bought, not built", itemID)
	}
	if node.Runs != runs {
		return fmt.Errorf("expected %d runs for item %d but got %d", runs, itemID, node.Runs)
	}
	return nil
}

func (pc *planningContext) theExpansionShouldFailCyclic() error {
	if pc.err == nil {
		return fmt.Errorf("expected a cyclic dependency error but the expansion succeeded")
	}
	var cycleErr *industry.ErrCyclicDependency
	if !errors.As(pc.err, &cycleErr) {
		return fmt.Errorf("expected a cyclic dependency error but got: %v", pc.err)
	}
	return nil
}

func (pc *planningContext) theMaterialCostShouldBe(expected float64) error {
	if pc.breakdown == nil {
		return fmt.Errorf("no cost breakdown computed")
	}
	return approxEqual("material cost", expected, pc.breakdown.MaterialCost)
}

func (pc *planningContext) theOutputValueShouldBe(expected float64) error {
	if pc.breakdown == nil {
		return fmt.Errorf("no cost breakdown computed")
	}
	return approxEqual("output value", expected, pc.breakdown.OutputValue)
}

func (pc *planningContext) itemsShouldHaveNoPrice(count int) error {
	if pc.breakdown == nil {
		return fmt.Errorf("no cost breakdown computed")
	}
	if pc.breakdown.ItemsWithoutPrices != count {
		return fmt.Errorf("expected %d unpriced items but got %d", count, pc.breakdown.ItemsWithoutPrices)
	}
	return nil
}

func (pc *planningContext) theTotalJobCostShouldBe(expected float64) error {
	if pc.breakdown == nil {
		return fmt.Errorf("no cost breakdown computed")
	}
	return approxEqual("total job cost", expected, pc.breakdown.TotalJobCost)
}

// findNode searches the tree depth-first for the first node of an item
func findNode(node *industry.RequirementNode, itemID int64) *industry.RequirementNode {
	if node.ItemID == itemID {
		return node
	}
	for _, child := range node.Children {
		if found := findNode(child, itemID); found != nil {
			return found
		}
	}
	return nil
}

// approxEqual compares floats with a small absolute tolerance
func approxEqual(what string, expected, actual float64) error {
	if math.Abs(expected-actual) > 1e-6 {
		return fmt.Errorf("expected %s %.6f but got %.6f", what, expected, actual)
	}
	return nil
}
