package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/output"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/refdata"
)

var (
	countryName   string
	countryCode   string
	countryActive bool
	countryYes    bool
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Maintain the country reference list",
}

var countriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountriesList(cmd.Context())
	},
}

var countriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a country",
	Long: `Create a country.

The code must be unique among all countries; the check is case-insensitive
and runs before any request is sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountriesCreate(cmd.Context())
	},
}

var countriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid country id %q", args[0])
		}
		return runCountriesUpdate(cmd.Context(), id)
	},
}

var countriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a country",
	Long: `Delete a country.

The server rejects the delete while products still reference the country;
the rejection message is shown as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid country id %q", args[0])
		}
		return runCountriesDelete(cmd.Context(), id)
	},
}

var countriesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a country's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid country id %q", args[0])
		}
		return runCountriesToggle(cmd.Context(), id)
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
	countriesCmd.AddCommand(countriesListCmd, countriesCreateCmd, countriesUpdateCmd, countriesDeleteCmd, countriesToggleCmd)

	for _, cmd := range []*cobra.Command{countriesCreateCmd, countriesUpdateCmd} {
		cmd.Flags().StringVar(&countryName, "name", "", "Country name")
		cmd.Flags().StringVar(&countryCode, "code", "", "Country code (max 5 characters)")
		cmd.Flags().BoolVar(&countryActive, "active", true, "Active flag")
	}
	countriesDeleteCmd.Flags().BoolVarP(&countryYes, "yes", "y", false, "Skip the confirmation prompt")
}

func newCountryEditor(ctx context.Context) (*refdata.CountryEditor, error) {
	api, err := newClient()
	if err != nil {
		return nil, err
	}
	editor := refdata.NewCountryEditor(api.Countries(), log.Default())
	if err := editor.Load(ctx); err != nil {
		output.Error("%s", userMessage(err))
		return nil, err
	}
	return editor, nil
}

func runCountriesList(ctx context.Context) error {
	editor, err := newCountryEditor(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(editor.Items())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tACTIVE")
	for _, c := range editor.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Code, c.Name, output.ActiveIcon(c.Active))
	}
	w.Flush()
	return nil
}

func runCountriesCreate(ctx context.Context) error {
	editor, err := newCountryEditor(ctx)
	if err != nil {
		return err
	}

	created, err := editor.Create(ctx, domain.Country{
		Name:   countryName,
		Code:   countryCode,
		Active: countryActive,
	})
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("created country %d (%s)", created.ID, created.Code)
	return nil
}

func runCountriesUpdate(ctx context.Context, id int) error {
	editor, err := newCountryEditor(ctx)
	if err != nil {
		return err
	}

	updated, err := editor.Update(ctx, id, domain.Country{
		Name:   countryName,
		Code:   countryCode,
		Active: countryActive,
	})
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("updated country %d (%s)", updated.ID, updated.Code)
	return nil
}

func runCountriesDelete(ctx context.Context, id int) error {
	if !countryYes {
		return fmt.Errorf("refusing to delete without --yes")
	}

	editor, err := newCountryEditor(ctx)
	if err != nil {
		return err
	}

	if err := editor.Delete(ctx, id); err != nil {
		return reportRefdataError(err)
	}
	output.Success("deleted country %d", id)
	return nil
}

func runCountriesToggle(ctx context.Context, id int) error {
	editor, err := newCountryEditor(ctx)
	if err != nil {
		return err
	}

	toggled, err := editor.ToggleActive(ctx, id)
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("country %d active=%t", toggled.ID, toggled.Active)
	return nil
}

// reportRefdataError prints validation failures field by field, and wire
// failures through their detail message.
func reportRefdataError(err error) error {
	if ve, ok := refdata.AsValidationError(err); ok {
		for field, msg := range ve.Fields {
			output.Error("%s: %s", field, msg)
		}
		return err
	}
	output.Error("%s", userMessage(err))
	return err
}
