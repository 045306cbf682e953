package config

import "github.com/spf13/viper"

// setDefaults registers the lowest-priority configuration values
func setDefaults(v *viper.Viper) {
	// Database
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "industry.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.pool.max_open", 10)
	v.SetDefault("database.pool.max_idle", 5)
	v.SetDefault("database.pool.max_lifetime", "30m")

	// Planning
	v.SetDefault("planning.default_region_id", 10000002)
	v.SetDefault("planning.max_depth", 0)

	// Trading fees (standard in-game schedule)
	v.SetDefault("planning.fees.sales_tax_base", 0.045)
	v.SetDefault("planning.fees.sales_tax_reduction_per_level", 0.11)
	v.SetDefault("planning.fees.sales_tax_min", 0.005)
	v.SetDefault("planning.fees.broker_fee_base", 0.03)
	v.SetDefault("planning.fees.broker_fee_reduction_per_level", 0.003)
	v.SetDefault("planning.fees.broker_fee_min", 0.01)
}
