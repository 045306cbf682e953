package industry

// SCCSurchargeRate is the fixed transaction-broker surcharge applied to
// every job's base cost.
const SCCSurchargeRate = 0.04

// MaterialCostLine is the priced view of one flattened material.
// HasPrice is false when the price source had no quote for the item;
// such lines are excluded from the material-cost sum but still carry
// their quantity so the caller can render them.
type MaterialCostLine struct {
	ItemID     int64
	Quantity   int64
	UnitPrice  float64
	TotalPrice float64
	HasPrice   bool
}

// CostBreakdown is the full costed view of a production plan. Computed
// once per resolve(); a pure value object.
type CostBreakdown struct {
	MaterialLines      []MaterialCostLine
	MaterialCost       float64
	ItemsWithoutPrices int

	// Job installation costs
	EstimatedItemValue float64
	SystemCostIndex    float64
	JobGrossCost       float64
	JobBaseCost        float64
	FacilityTax        float64
	SCCSurcharge       float64
	TotalJobCost       float64

	// Trading fees
	MaterialBrokerFee float64
	SalesTax          float64
	ProductBrokerFee  float64

	TotalCost   float64
	OutputValue float64
	Profit      float64

	// ProfitMargin is nil when OutputValue is zero; a margin over nothing
	// is undefined, not NaN.
	ProfitMargin *float64
}

// TaxSkills are the character skill levels that reduce trading fees
type TaxSkills struct {
	Accounting      int // reduces sales tax
	BrokerRelations int // reduces broker fees
}
