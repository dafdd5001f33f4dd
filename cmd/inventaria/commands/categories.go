package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/output"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/i18n"
	"github.com/inventaria/inventaria/pkg/refdata"
)

var (
	categoryName        string
	categoryDescription string
	categoryActive      bool
	categoryYes         bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Maintain the category reference list",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their product counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCategoriesList(cmd.Context())
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	Long: `Create a category.

The name must be unique among all categories; the check is case-insensitive
and runs before any request is sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCategoriesCreate(cmd.Context())
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}
		return runCategoriesUpdate(cmd.Context(), id)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Long: `Delete a category.

A category that still has products assigned is refused locally; nothing is
sent to the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}
		return runCategoriesDelete(cmd.Context(), id)
	},
}

var categoriesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a category's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}
		return runCategoriesToggle(cmd.Context(), id)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd, categoriesToggleCmd)

	for _, cmd := range []*cobra.Command{categoriesCreateCmd, categoriesUpdateCmd} {
		cmd.Flags().StringVar(&categoryName, "name", "", "Category name (max 100 characters)")
		cmd.Flags().StringVar(&categoryDescription, "description", "", "Description (max 500 characters)")
		cmd.Flags().BoolVar(&categoryActive, "active", true, "Active flag")
	}
	categoriesDeleteCmd.Flags().BoolVarP(&categoryYes, "yes", "y", false, "Skip the confirmation prompt")
}

func newCategoryEditor(ctx context.Context) (*refdata.CategoryEditor, error) {
	api, err := newClient()
	if err != nil {
		return nil, err
	}
	editor := refdata.NewCategoryEditor(api.Categories(), log.Default())
	if err := editor.Load(ctx); err != nil {
		output.Error("%s", userMessage(err))
		return nil, err
	}
	return editor, nil
}

func runCategoriesList(ctx context.Context) error {
	editor, err := newCategoryEditor(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(editor.Items())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRODUCTS\tACTIVE")
	for _, c := range editor.Items() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", c.ID, c.Name, c.ProductCount, output.ActiveIcon(c.Active))
	}
	w.Flush()
	return nil
}

func runCategoriesCreate(ctx context.Context) error {
	editor, err := newCategoryEditor(ctx)
	if err != nil {
		return err
	}

	created, err := editor.Create(ctx, domain.Category{
		Name:        categoryName,
		Description: categoryDescription,
		Active:      categoryActive,
	})
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("created category %d (%s)", created.ID, created.Name)
	return nil
}

func runCategoriesUpdate(ctx context.Context, id int) error {
	editor, err := newCategoryEditor(ctx)
	if err != nil {
		return err
	}

	updated, err := editor.Update(ctx, id, domain.Category{
		Name:        categoryName,
		Description: categoryDescription,
		Active:      categoryActive,
	})
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("updated category %d (%s)", updated.ID, updated.Name)
	return nil
}

func runCategoriesDelete(ctx context.Context, id int) error {
	if !categoryYes {
		return fmt.Errorf("refusing to delete without --yes")
	}

	editor, err := newCategoryEditor(ctx)
	if err != nil {
		return err
	}

	if err := editor.Delete(ctx, id); err != nil {
		if errors.Is(err, refdata.ErrHasProducts) {
			output.Warning("%s", i18n.T("categories.has_products"))
			return err
		}
		return reportRefdataError(err)
	}
	output.Success("deleted category %d", id)
	return nil
}

func runCategoriesToggle(ctx context.Context, id int) error {
	editor, err := newCategoryEditor(ctx)
	if err != nil {
		return err
	}

	toggled, err := editor.ToggleActive(ctx, id)
	if err != nil {
		return reportRefdataError(err)
	}
	output.Success("category %d active=%t", toggled.ID, toggled.Active)
	return nil
}
