package config

// PlanningConfig holds planning-engine defaults and the trading-fee
// schedule.
type PlanningConfig struct {
	// DefaultRegionID is the market region used when a query supplies none
	DefaultRegionID int64 `mapstructure:"default_region_id" validate:"min=0"`

	// MaxDepth caps expansion depth; 0 means unlimited
	MaxDepth int `mapstructure:"max_depth" validate:"min=0"`

	Fees FeeConfig `mapstructure:"fees"`
}

// FeeConfig is the configurable trading-fee schedule. All rates are
// fractions (0.045 means 4.5%).
type FeeConfig struct {
	SalesTaxBase              float64 `mapstructure:"sales_tax_base" validate:"min=0,max=1"`
	SalesTaxReductionPerLevel float64 `mapstructure:"sales_tax_reduction_per_level" validate:"min=0,max=1"`
	SalesTaxMin               float64 `mapstructure:"sales_tax_min" validate:"min=0,max=1"`

	BrokerFeeBase              float64 `mapstructure:"broker_fee_base" validate:"min=0,max=1"`
	BrokerFeeReductionPerLevel float64 `mapstructure:"broker_fee_reduction_per_level" validate:"min=0,max=1"`
	BrokerFeeMin               float64 `mapstructure:"broker_fee_min" validate:"min=0,max=1"`
}
