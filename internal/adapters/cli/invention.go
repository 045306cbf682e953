package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/industry-go/internal/application/planning/queries"
	"github.com/andrescamacho/industry-go/internal/application/planning/types"
	"github.com/andrescamacho/industry-go/internal/domain/industry"
)

// NewInventionCommand creates the invention command
func NewInventionCommand() *cobra.Command {
	var itemID int64
	var strategyName string
	var customVolume float64

	cmd := &cobra.Command{
		Use:   "invention",
		Short: "Find the best decryptor for inventing an item",
		Long: `Evaluate every available decryptor (and the no-decryptor baseline)
for inventing a tech-2 item, scoring each candidate under the chosen
strategy and reporting the best choice.

Strategies:
  cost    - minimize expected cost per successfully invented run
  profit  - maximize expected profit per invention attempt
  volume  - minimize expected cost over a fixed production volume

Examples:
  industry invention --item 12042 --strategy cost
  industry invention --item 12042 --strategy profit --character 90000001
  industry invention --item 12042 --strategy volume --volume 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemID == 0 {
				return fmt.Errorf("--item flag is required")
			}

			strategy, err := industry.ParseInventionStrategy(strategyName)
			if err != nil {
				return err
			}

			app, err := buildApp()
			if err != nil {
				return err
			}

			query := &queries.OptimizeInventionQuery{
				ItemID:       itemID,
				CharacterID:  characterID,
				RegionID:     app.effectiveRegion(),
				Strategy:     strategy,
				CustomVolume: customVolume,
			}

			response, err := app.mediator.Send(commandContext(), query)
			if err != nil {
				return err
			}

			result, ok := response.(*queries.OptimizeInventionResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			printInvention(result.Result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&itemID, "item", 0, "Item ID to invent (required)")
	cmd.Flags().StringVar(&strategyName, "strategy", "cost", "Optimization strategy (cost, profit, volume)")
	cmd.Flags().Float64Var(&customVolume, "volume", 0, "Production volume for the volume strategy")

	return cmd
}

// printInvention renders the optimization result to stdout
func printInvention(result *types.InventionResultDTO) {
	fmt.Printf("Invention for item %d (base probability %.1f%%, strategy %s)\n\n",
		result.ItemID, result.BaseProbability*100, result.Strategy)

	fmt.Printf("%-28s %8s %6s %4s %4s %16s %16s\n",
		"Decryptor", "Prob", "Runs", "ME", "TE", "Materials", "Score")
	for _, c := range result.Candidates {
		name := c.DecryptorName
		if name == "" {
			name = "(none)"
		}
		marker := " "
		if c.DecryptorItemID == result.Best.DecryptorItemID {
			marker = "*"
		}
		fmt.Printf("%s %-26s %7.2f%% %6d %4d %4d %16.2f %16.2f\n",
			marker, name, c.Probability*100, c.Runs, c.ME, c.TE, c.MaterialCost, c.Score)
	}

	best := result.Best.DecryptorName
	if best == "" {
		best = "no decryptor"
	}
	fmt.Printf("\nBest choice: %s\n", best)
}
