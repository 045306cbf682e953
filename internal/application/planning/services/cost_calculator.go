package services

import (
	"context"

	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// Skill names consulted for trading-fee reductions
const (
	skillAccounting      = "Accounting"
	skillBrokerRelations = "Broker Relations"
)

// TradeFeeRates are the base trading-fee rates and their per-skill-level
// reductions. Defaults match the in-game fee schedule.
type TradeFeeRates struct {
	BaseSalesTaxRate          float64
	SalesTaxReductionPerLevel float64 // fraction of the base rate, per Accounting level
	MinSalesTaxRate           float64

	BaseBrokerFeeRate          float64
	BrokerFeeReductionPerLevel float64 // absolute percentage points, per Broker Relations level
	MinBrokerFeeRate           float64
}

// DefaultTradeFeeRates returns the standard fee schedule
func DefaultTradeFeeRates() TradeFeeRates {
	return TradeFeeRates{
		BaseSalesTaxRate:           0.045,
		SalesTaxReductionPerLevel:  0.11,
		MinSalesTaxRate:            0.005,
		BaseBrokerFeeRate:          0.03,
		BrokerFeeReductionPerLevel: 0.003,
		MinBrokerFeeRate:           0.01,
	}
}

// SalesTaxRate returns the effective sales tax rate for an Accounting
// skill level, floored at the minimum rate.
func (r TradeFeeRates) SalesTaxRate(accountingLevel int) float64 {
	rate := r.BaseSalesTaxRate * (1.0 - r.SalesTaxReductionPerLevel*float64(accountingLevel))
	if rate < r.MinSalesTaxRate {
		rate = r.MinSalesTaxRate
	}
	return rate
}

// BrokerFeeRate returns the effective broker fee rate for a Broker
// Relations skill level, floored at the minimum rate.
func (r TradeFeeRates) BrokerFeeRate(brokerRelationsLevel int) float64 {
	rate := r.BaseBrokerFeeRate - r.BrokerFeeReductionPerLevel*float64(brokerRelationsLevel)
	if rate < r.MinBrokerFeeRate {
		rate = r.MinBrokerFeeRate
	}
	return rate
}

// PricingRequest carries everything the calculator needs to cost one
// expansion result.
type PricingRequest struct {
	Result   *ExpansionResult
	Runs     int64
	Activity industry.Activity

	Facility *industry.Facility // nil means no installation costs or facility tax
	// CostMultiplier is the structure-tier job cost multiplier from the
	// bonus resolver; 1 when no facility applies.
	CostMultiplier float64

	RegionID    int64
	CharacterID int64 // zero means unskilled (base fee rates)
}

// CostCalculator turns a flattened material list plus price data into a
// full cost breakdown: material cost, job installation cost, taxes,
// trading fees and profit.
type CostCalculator struct {
	prices      industry.PriceLookup
	costIndexes industry.CostIndexLookup
	taxProfile  industry.TaxProfile
	rates       TradeFeeRates
}

// NewCostCalculator creates a calculator with the given fee schedule
func NewCostCalculator(
	prices industry.PriceLookup,
	costIndexes industry.CostIndexLookup,
	taxProfile industry.TaxProfile,
	rates TradeFeeRates,
) *CostCalculator {
	return &CostCalculator{
		prices:      prices,
		costIndexes: costIndexes,
		taxProfile:  taxProfile,
		rates:       rates,
	}
}

// Price computes the cost breakdown for an expansion result. Missing
// market prices are never errors: unpriced materials are excluded from
// the sum and surfaced through ItemsWithoutPrices and per-line HasPrice
// flags so the caller can still render quantities.
func (c *CostCalculator) Price(ctx context.Context, req PricingRequest) (*industry.CostBreakdown, error) {
	breakdown := &industry.CostBreakdown{}

	if err := c.priceMaterials(ctx, req, breakdown); err != nil {
		return nil, err
	}
	if err := c.priceJob(ctx, req, breakdown); err != nil {
		return nil, err
	}
	if err := c.applyTradingFees(ctx, req, breakdown); err != nil {
		return nil, err
	}

	breakdown.TotalCost = breakdown.MaterialCost + breakdown.TotalJobCost + breakdown.MaterialBrokerFee
	breakdown.Profit = breakdown.OutputValue - breakdown.TotalCost - breakdown.SalesTax - breakdown.ProductBrokerFee
	if breakdown.OutputValue > 0 {
		margin := breakdown.Profit / breakdown.OutputValue * 100.0
		breakdown.ProfitMargin = &margin
	}

	return breakdown, nil
}

// priceMaterials sums market prices over the flattened material map in
// deterministic item-id order.
func (c *CostCalculator) priceMaterials(ctx context.Context, req PricingRequest, breakdown *industry.CostBreakdown) error {
	flat := req.Result.FlatMaterials
	lines := make([]industry.MaterialCostLine, 0, len(flat))

	for _, itemID := range flat.SortedItemIDs() {
		quantity := flat[itemID]
		line := industry.MaterialCostLine{ItemID: itemID, Quantity: quantity}

		unitPrice, err := c.prices.GetUnitPrice(ctx, itemID, req.RegionID, industry.PriceSell)
		if err != nil {
			return &industry.ErrCollaborator{Operation: "GetUnitPrice", Err: err}
		}
		if unitPrice == nil {
			breakdown.ItemsWithoutPrices++
		} else {
			line.HasPrice = true
			line.UnitPrice = *unitPrice
			line.TotalPrice = float64(quantity) * *unitPrice
			breakdown.MaterialCost += line.TotalPrice
		}
		lines = append(lines, line)
	}

	breakdown.MaterialLines = lines
	return nil
}

// priceJob computes the installation-fee chain: estimated item value,
// gross cost from the system cost index, the structure discount, the
// facility tax and the fixed SCC surcharge.
func (c *CostCalculator) priceJob(ctx context.Context, req PricingRequest, breakdown *industry.CostBreakdown) error {
	// EIV uses the root blueprint's unresearched per-run quantities and
	// the pricing engine's adjusted prices, not market prices.
	for _, mat := range req.Result.RootDefinition.Materials {
		adjusted, err := c.prices.GetAdjustedPrice(ctx, mat.ItemID)
		if err != nil {
			return &industry.ErrCollaborator{Operation: "GetAdjustedPrice", Err: err}
		}
		if adjusted == nil {
			continue
		}
		breakdown.EstimatedItemValue += float64(mat.Quantity) * *adjusted
	}
	breakdown.EstimatedItemValue *= float64(req.Runs)

	if req.Facility == nil {
		return nil
	}

	index, err := c.costIndexes.Get(ctx, req.Facility.SolarSystemID, req.Activity)
	if err != nil {
		return &industry.ErrCollaborator{Operation: "CostIndexLookup.Get", Err: err}
	}

	costMultiplier := req.CostMultiplier
	if costMultiplier == 0 {
		costMultiplier = 1.0
	}

	breakdown.SystemCostIndex = index
	breakdown.JobGrossCost = breakdown.EstimatedItemValue * index
	breakdown.JobBaseCost = breakdown.JobGrossCost * costMultiplier
	breakdown.FacilityTax = breakdown.JobBaseCost * req.Facility.TaxRate
	breakdown.SCCSurcharge = breakdown.JobBaseCost * industry.SCCSurchargeRate
	breakdown.TotalJobCost = breakdown.JobBaseCost + breakdown.FacilityTax + breakdown.SCCSurcharge
	return nil
}

// applyTradingFees computes broker fees on the material buy, and sales
// tax plus broker fee on the product sell.
func (c *CostCalculator) applyTradingFees(ctx context.Context, req PricingRequest, breakdown *industry.CostBreakdown) error {
	accounting, brokerRelations := 0, 0
	if req.CharacterID != 0 {
		var err error
		accounting, err = c.taxProfile.GetSkillLevel(ctx, req.CharacterID, skillAccounting)
		if err != nil {
			return &industry.ErrCollaborator{Operation: "GetSkillLevel", Err: err}
		}
		brokerRelations, err = c.taxProfile.GetSkillLevel(ctx, req.CharacterID, skillBrokerRelations)
		if err != nil {
			return &industry.ErrCollaborator{Operation: "GetSkillLevel", Err: err}
		}
	}

	salesTaxRate := c.rates.SalesTaxRate(accounting)
	brokerFeeRate := c.rates.BrokerFeeRate(brokerRelations)

	productPrice, err := c.prices.GetUnitPrice(ctx, req.Result.Root.ItemID, req.RegionID, industry.PriceSell)
	if err != nil {
		return &industry.ErrCollaborator{Operation: "GetUnitPrice", Err: err}
	}
	if productPrice != nil {
		outputUnits := req.Result.RootDefinition.OutputQuantity * req.Runs
		breakdown.OutputValue = float64(outputUnits) * *productPrice
	}

	breakdown.MaterialBrokerFee = breakdown.MaterialCost * brokerFeeRate
	breakdown.SalesTax = breakdown.OutputValue * salesTaxRate
	breakdown.ProductBrokerFee = breakdown.OutputValue * brokerFeeRate
	return nil
}
