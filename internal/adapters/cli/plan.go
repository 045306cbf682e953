package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/industry-go/internal/application/planning/queries"
	"github.com/andrescamacho/industry-go/internal/application/planning/types"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var itemID int64
	var runs int64
	var meLevel, teLevel int
	var facilityID string
	var activityName string
	var maxDepth int
	var buyItemIDs []int64
	var withPricing bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve a full production plan for an item",
		Long: `Resolve the complete bill of materials for a manufacturable item.

The plan recursively expands intermediates, applies blueprint research
and facility bonuses at every level, and reports the flattened raw
materials with the estimated production time. With --with-pricing the
plan also includes material costs, job installation fees and profit.

Examples:
  industry plan --item 603 --runs 10 --me 10 --te 20
  industry plan --item 603 --facility RAITARU-JITA --with-pricing
  industry plan --item 12042 --buy 11399 --buy 11400 --max-depth 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemID == 0 {
				return fmt.Errorf("--item flag is required")
			}

			activity, err := industry.ParseActivity(activityName)
			if err != nil {
				return err
			}

			app, err := buildApp()
			if err != nil {
				return err
			}

			query := &queries.ResolveProductionPlanQuery{
				ItemID:      itemID,
				Runs:        runs,
				MELevel:     meLevel,
				TELevel:     teLevel,
				FacilityID:  facilityID,
				Activity:    activity,
				RegionID:    app.effectiveRegion(),
				CharacterID: characterID,
				MaxDepth:    maxDepth,
				BuyItemIDs:  buyItemIDs,
				WithPricing: withPricing,
			}

			response, err := app.mediator.Send(commandContext(), query)
			if err != nil {
				return err
			}

			result, ok := response.(*queries.ResolveProductionPlanResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			printPlan(result.Plan)
			return nil
		},
	}

	cmd.Flags().Int64Var(&itemID, "item", 0, "Item ID to manufacture (required)")
	cmd.Flags().Int64Var(&runs, "runs", 1, "Number of blueprint runs")
	cmd.Flags().IntVar(&meLevel, "me", 0, "Material efficiency level (0-10)")
	cmd.Flags().IntVar(&teLevel, "te", 0, "Time efficiency level (0-20)")
	cmd.Flags().StringVar(&facilityID, "facility", "", "Facility ID for structure and rig bonuses")
	cmd.Flags().StringVar(&activityName, "activity", "manufacturing", "Production activity (manufacturing, reaction)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum expansion depth (0 = unlimited)")
	cmd.Flags().Int64SliceVar(&buyItemIDs, "buy", nil, "Item IDs to buy instead of build (repeatable)")
	cmd.Flags().BoolVar(&withPricing, "with-pricing", false, "Include cost breakdown")

	return cmd
}

// printPlan renders the resolved plan to stdout
func printPlan(plan *types.ProductionPlanDTO) {
	fmt.Printf("Production plan %s\n", plan.PlanID)
	fmt.Printf("Item %d x %d runs (%s)\n\n", plan.ItemID, plan.Runs, plan.Activity)

	formatter := NewTreeFormatter(verbose)
	fmt.Print(formatter.FormatTree(plan.Tree))

	fmt.Printf("\nRaw materials:\n")
	for _, line := range plan.Materials {
		if line.HasPrice {
			fmt.Printf("  %10d x %-12d %14.2f ISK\n", line.Quantity, line.ItemID, line.TotalPrice)
		} else {
			fmt.Printf("  %10d x %-12d %14s\n", line.Quantity, line.ItemID, "(no price)")
		}
	}
	fmt.Printf("\nEstimated production time: %s\n", formatDuration(plan.TotalSeconds))

	if plan.Pricing != nil {
		printBreakdown(plan.Pricing)
	}
}

// printBreakdown renders the cost breakdown section
func printBreakdown(b *types.CostBreakdownDTO) {
	fmt.Printf("\nCost breakdown:\n")
	fmt.Printf("  Materials:           %14.2f ISK", b.MaterialCost)
	if b.ItemsWithoutPrices > 0 {
		fmt.Printf("  (%d unpriced)", b.ItemsWithoutPrices)
	}
	fmt.Println()
	fmt.Printf("  Job installation:    %14.2f ISK  (EIV %.2f, index %.4f)\n",
		b.TotalJobCost, b.EstimatedItemValue, b.SystemCostIndex)
	fmt.Printf("  Facility tax:        %14.2f ISK\n", b.FacilityTax)
	fmt.Printf("  SCC surcharge:       %14.2f ISK\n", b.SCCSurcharge)
	fmt.Printf("  Material broker fee: %14.2f ISK\n", b.MaterialBrokerFee)
	fmt.Printf("  Total cost:          %14.2f ISK\n", b.TotalCost)
	fmt.Printf("  Output value:        %14.2f ISK\n", b.OutputValue)
	fmt.Printf("  Sales tax:           %14.2f ISK\n", b.SalesTax)
	fmt.Printf("  Product broker fee:  %14.2f ISK\n", b.ProductBrokerFee)
	fmt.Printf("  Profit:              %14.2f ISK\n", b.Profit)
	if b.ProfitMargin != nil {
		fmt.Printf("  Margin:              %13.2f%%\n", *b.ProfitMargin)
	} else {
		fmt.Printf("  Margin:              %14s\n", "n/a")
	}
}

// formatDuration renders seconds as d/h/m/s
func formatDuration(seconds int64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}
