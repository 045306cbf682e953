package types

import "github.com/andrescamacho/industry-go/internal/domain/industry"

// RequirementNodeDTO mirrors the domain requirement tree for consumers
type RequirementNodeDTO struct {
	ItemID            int64                 `json:"item_id"`
	Quantity          int64                 `json:"quantity"`
	IsIntermediate    bool                  `json:"is_intermediate"`
	SourceBlueprintID int64                 `json:"source_blueprint_id,omitempty"`
	Runs              int64                 `json:"runs,omitempty"`
	MELevel           int                   `json:"me_level,omitempty"`
	TELevel           int                   `json:"te_level,omitempty"`
	TimeSeconds       int64                 `json:"time_seconds,omitempty"`
	Children          []*RequirementNodeDTO `json:"children,omitempty"`
}

// MaterialLineDTO is one flattened raw material with optional pricing
type MaterialLineDTO struct {
	ItemID     int64   `json:"item_id"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
	HasPrice   bool    `json:"has_price"`
}

// CostBreakdownDTO mirrors the domain cost breakdown
type CostBreakdownDTO struct {
	MaterialCost       float64  `json:"material_cost"`
	ItemsWithoutPrices int      `json:"items_without_prices"`
	EstimatedItemValue float64  `json:"estimated_item_value"`
	SystemCostIndex    float64  `json:"system_cost_index"`
	JobGrossCost       float64  `json:"job_gross_cost"`
	JobBaseCost        float64  `json:"job_base_cost"`
	FacilityTax        float64  `json:"facility_tax"`
	SCCSurcharge       float64  `json:"scc_surcharge"`
	TotalJobCost       float64  `json:"total_job_cost"`
	MaterialBrokerFee  float64  `json:"material_broker_fee"`
	SalesTax           float64  `json:"sales_tax"`
	ProductBrokerFee   float64  `json:"product_broker_fee"`
	TotalCost          float64  `json:"total_cost"`
	OutputValue        float64  `json:"output_value"`
	Profit             float64  `json:"profit"`
	ProfitMargin       *float64 `json:"profit_margin"`
}

// ProductionPlanDTO is the full result of a production-plan resolution
type ProductionPlanDTO struct {
	PlanID       string             `json:"plan_id"`
	ItemID       int64              `json:"item_id"`
	Runs         int64              `json:"runs"`
	Activity     string             `json:"activity"`
	Tree         *RequirementNodeDTO `json:"tree"`
	Materials    []MaterialLineDTO  `json:"materials"`
	TotalSeconds int64              `json:"total_seconds"`
	Pricing      *CostBreakdownDTO  `json:"pricing,omitempty"`
}

// DecryptorCandidateDTO is one evaluated decryptor choice
type DecryptorCandidateDTO struct {
	DecryptorItemID int64   `json:"decryptor_item_id,omitempty"`
	DecryptorName   string  `json:"decryptor_name,omitempty"`
	Probability     float64 `json:"probability"`
	Runs            int64   `json:"runs"`
	ME              int     `json:"me"`
	TE              int     `json:"te"`
	MaterialCost    float64 `json:"material_cost"`
	Score           float64 `json:"score"`
}

// InventionResultDTO is the outcome of an invention optimization
type InventionResultDTO struct {
	ItemID          int64                   `json:"item_id"`
	BaseProbability float64                 `json:"base_probability"`
	Strategy        string                  `json:"strategy"`
	Candidates      []DecryptorCandidateDTO `json:"candidates"`
	Best            DecryptorCandidateDTO   `json:"best"`
}

// NodeToDTO converts a domain requirement tree into its DTO form
func NodeToDTO(node *industry.RequirementNode) *RequirementNodeDTO {
	if node == nil {
		return nil
	}
	dto := &RequirementNodeDTO{
		ItemID:            node.ItemID,
		Quantity:          node.Quantity,
		IsIntermediate:    node.IsIntermediate,
		SourceBlueprintID: node.SourceBlueprintID,
		Runs:              node.Runs,
		MELevel:           node.MELevel,
		TELevel:           node.TELevel,
		TimeSeconds:       node.TimeSeconds,
	}
	for _, child := range node.Children {
		dto.Children = append(dto.Children, NodeToDTO(child))
	}
	return dto
}

// BreakdownToDTO converts a domain cost breakdown into its DTO form
func BreakdownToDTO(b *industry.CostBreakdown) *CostBreakdownDTO {
	if b == nil {
		return nil
	}
	return &CostBreakdownDTO{
		MaterialCost:       b.MaterialCost,
		ItemsWithoutPrices: b.ItemsWithoutPrices,
		EstimatedItemValue: b.EstimatedItemValue,
		SystemCostIndex:    b.SystemCostIndex,
		JobGrossCost:       b.JobGrossCost,
		JobBaseCost:        b.JobBaseCost,
		FacilityTax:        b.FacilityTax,
		SCCSurcharge:       b.SCCSurcharge,
		TotalJobCost:       b.TotalJobCost,
		MaterialBrokerFee:  b.MaterialBrokerFee,
		SalesTax:           b.SalesTax,
		ProductBrokerFee:   b.ProductBrokerFee,
		TotalCost:          b.TotalCost,
		OutputValue:        b.OutputValue,
		Profit:             b.Profit,
		ProfitMargin:       b.ProfitMargin,
	}
}

// CandidateToDTO converts one decryptor candidate into its DTO form
func CandidateToDTO(c industry.DecryptorCandidate) DecryptorCandidateDTO {
	dto := DecryptorCandidateDTO{
		Probability:  c.Probability,
		Runs:         c.Runs,
		ME:           c.ME,
		TE:           c.TE,
		MaterialCost: c.MaterialCost,
		Score:        c.Score,
	}
	if c.Decryptor != nil {
		dto.DecryptorItemID = c.Decryptor.ItemID
		dto.DecryptorName = c.Decryptor.Name
	}
	return dto
}
