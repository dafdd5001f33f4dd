package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/output"
	"github.com/inventaria/inventaria/cmd/inventaria/tui"
	"github.com/inventaria/inventaria/pkg/domain"
)

var (
	purgeInteractive bool
	purgeCountry     string
	purgeMode        string
	purgeInclude     bool
	purgeYes         bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete a country's products and/or movements",
	Long: `Delete a country's products and/or movements. This is irreversible.

The interactive form (--interactive) walks through country selection,
password entry and a final confirmation. The scriptable form requires
--country, --mode and --yes, and prompts for the operator password, which
is verified by the server.

Modes:
  products   - delete products (add --include-movements to cascade)
  movements  - delete stock movements
  all        - delete both`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPurge(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeInteractive, "interactive", "i", false, "Open the interactive purge form")
	purgeCmd.Flags().StringVar(&purgeCountry, "country", "", "Country code")
	purgeCmd.Flags().StringVar(&purgeMode, "mode", "products", "What to delete: products, movements or all")
	purgeCmd.Flags().BoolVar(&purgeInclude, "include-movements", false, "Also delete movements when purging products")
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Confirm the irreversible deletion")
}

func runPurge(ctx context.Context) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	if purgeInteractive {
		result, err := tui.RunPurgeUI(api)
		if err != nil {
			output.Error("%s", userMessage(err))
			return err
		}
		if result != nil {
			reportPurge(result)
		}
		return nil
	}

	if purgeCountry == "" {
		return fmt.Errorf("--country is required")
	}
	if !purgeYes {
		return fmt.Errorf("refusing an irreversible purge without --yes")
	}

	fmt.Print("Operator password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return fmt.Errorf("operator password is required")
	}

	var result *domain.PurgeResult
	switch purgeMode {
	case "products":
		result, err = api.Statistics().PurgeProducts(ctx, purgeCountry, purgeInclude, password)
	case "movements":
		result, err = api.Statistics().PurgeMovements(ctx, purgeCountry, password)
	case "all":
		result, err = api.Statistics().PurgeAll(ctx, purgeCountry, password)
	default:
		return fmt.Errorf("invalid --mode %q: must be products, movements or all", purgeMode)
	}
	if err != nil {
		log.Error("purge failed", "country", purgeCountry, "mode", purgeMode, "error", err)
		output.Error("%s", userMessage(err))
		return err
	}

	reportPurge(result)
	return nil
}

func reportPurge(result *domain.PurgeResult) {
	output.Success("deleted %d product(s) and %d movement(s)",
		result.DeletedProducts, result.DeletedMovements)
}
