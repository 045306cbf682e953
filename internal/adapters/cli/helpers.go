package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/andrescamacho/industry-go/internal/adapters/persistence"
	"github.com/andrescamacho/industry-go/internal/application/common"
	"github.com/andrescamacho/industry-go/internal/application/planning/queries"
	"github.com/andrescamacho/industry-go/internal/application/planning/services"
	"github.com/andrescamacho/industry-go/internal/infrastructure/config"
	"github.com/andrescamacho/industry-go/internal/infrastructure/database"
)

// appContext bundles the wired application for one CLI invocation
type appContext struct {
	cfg      *config.Config
	mediator common.Mediator
}

// buildApp loads configuration, connects the reference database and
// wires the planning services behind the mediator.
func buildApp() (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect reference database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate reference database: %w", err)
	}

	catalog := persistence.NewGormCatalogRepository(db)
	prices := persistence.NewGormPriceRepository(db)
	costIndexes := persistence.NewGormCostIndexRepository(db)
	skills := persistence.NewGormSkillRepository(db)
	owned := persistence.NewGormOwnedBlueprintRepository(db)
	facilities := persistence.NewGormFacilityRepository(db)

	bonuses := services.NewBonusResolver(catalog)
	expander := services.NewBOMExpander(catalog, bonuses, owned)
	calculator := services.NewCostCalculator(prices, costIndexes, skills, tradeFeeRates(cfg))
	optimizer := services.NewInventionOptimizer(catalog, prices)

	m := common.NewMediator()
	if err := common.RegisterHandler[*queries.ResolveProductionPlanQuery](m,
		queries.NewResolveProductionPlanHandler(expander, bonuses, calculator, facilities)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.OptimizeInventionQuery](m,
		queries.NewOptimizeInventionHandler(optimizer, catalog, skills)); err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, mediator: m}, nil
}

// tradeFeeRates maps the fee schedule from configuration
func tradeFeeRates(cfg *config.Config) services.TradeFeeRates {
	fees := cfg.Planning.Fees
	return services.TradeFeeRates{
		BaseSalesTaxRate:           fees.SalesTaxBase,
		SalesTaxReductionPerLevel:  fees.SalesTaxReductionPerLevel,
		MinSalesTaxRate:            fees.SalesTaxMin,
		BaseBrokerFeeRate:          fees.BrokerFeeBase,
		BrokerFeeReductionPerLevel: fees.BrokerFeeReductionPerLevel,
		MinBrokerFeeRate:           fees.BrokerFeeMin,
	}
}

// effectiveRegion resolves the region flag against the config default
func (app *appContext) effectiveRegion() int64 {
	if regionID != 0 {
		return regionID
	}
	return app.cfg.Planning.DefaultRegionID
}

// stderrLogger emits planning logs through the standard logger
type stderrLogger struct{}

func (stderrLogger) Log(level, message string, metadata map[string]interface{}) {
	log.Printf("[%s] %s %v", level, message, metadata)
}

// commandContext returns the context for one command invocation, with a
// logger attached when --verbose is set.
func commandContext() context.Context {
	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, stderrLogger{})
	}
	return ctx
}
