package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/output"
	"github.com/inventaria/inventaria/cmd/inventaria/tui"
	"github.com/inventaria/inventaria/pkg/domain"
	"github.com/inventaria/inventaria/pkg/validate"
)

var (
	// users list flags
	userRoleFilter    int
	userCountryFilter int
	userActiveFilter  string
	userPage          int
	userPageSize      int

	// users create/update flags
	userInteractive bool
	userEmail       string
	userPassword    string
	userFirstName   string
	userLastName    string
	userRoleID      string
	userCountryIDs  []string
	userCategoryIDs []string
	userActive      bool

	// users delete flags
	userYes bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUsersList(cmd.Context())
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		return runUsersGet(cmd.Context(), id)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Create a user.

With --interactive the TUI form is opened; otherwise the field flags are
used. Users with the commercial role must be assigned at least one
category; every user needs at least one country.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUsersSave(cmd.Context(), 0)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Long: `Update a user.

Leaving --password blank keeps the current password; the field is omitted
from the update payload entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		return runUsersSave(cmd.Context(), id)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		return runUsersDelete(cmd.Context(), id)
	},
}

var usersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search users by name or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUsersSearch(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd, usersSearchCmd)

	usersListCmd.Flags().IntVar(&userRoleFilter, "role", 0, "Filter by role id")
	usersListCmd.Flags().IntVar(&userCountryFilter, "country", 0, "Filter by country id")
	usersListCmd.Flags().StringVar(&userActiveFilter, "active", "", "Filter by active flag (true/false)")
	usersListCmd.Flags().IntVar(&userPage, "page", 1, "Page number")
	usersListCmd.Flags().IntVar(&userPageSize, "page-size", 50, "Page size")

	for _, cmd := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		cmd.Flags().BoolVarP(&userInteractive, "interactive", "i", false, "Open the TUI form")
		cmd.Flags().StringVar(&userEmail, "email", "", "Email address")
		cmd.Flags().StringVar(&userPassword, "password", "", "Password")
		cmd.Flags().StringVar(&userFirstName, "first-name", "", "First name")
		cmd.Flags().StringVar(&userLastName, "last-name", "", "Last name")
		cmd.Flags().StringVar(&userRoleID, "role", "", "Role id")
		cmd.Flags().StringSliceVar(&userCountryIDs, "countries", nil, "Assigned country ids")
		cmd.Flags().StringSliceVar(&userCategoryIDs, "categories", nil, "Assigned category ids (commercial role only)")
		cmd.Flags().BoolVar(&userActive, "active", true, "Active flag")
	}

	usersDeleteCmd.Flags().BoolVarP(&userYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runUsersList(ctx context.Context) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	filters := domain.UserFilters{
		RoleID:    userRoleFilter,
		CountryID: userCountryFilter,
		Page:      userPage,
		PageSize:  userPageSize,
	}
	if userActiveFilter != "" {
		active, err := strconv.ParseBool(userActiveFilter)
		if err != nil {
			return fmt.Errorf("invalid --active value %q", userActiveFilter)
		}
		filters.Active = &active
	}

	page, err := api.Users().List(ctx, filters)
	if err != nil {
		log.Error("listing users failed", "error", err)
		output.Error("%s", userMessage(err))
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE")
	for _, u := range page.Items {
		role := ""
		if u.Role != nil {
			role = u.Role.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName(), role, output.ActiveIcon(u.Active))
	}
	w.Flush()

	output.Muted("page %d • %d total", page.Page, page.Total)
	return nil
}

func runUsersGet(ctx context.Context, id int) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	user, err := api.Users().Get(ctx, id)
	if err != nil {
		log.Error("fetching user failed", "id", id, "error", err)
		output.Error("%s", userMessage(err))
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}

	output.Section(user.FullName())
	output.Info("email: %s", user.Email)
	if user.Role != nil {
		output.Info("role: %s", user.Role.Name)
	}
	output.Info("countries: %v", user.CountryIDs)
	if len(user.CategoryIDs) > 0 {
		output.Info("categories: %v", user.CategoryIDs)
	}
	fmt.Printf("%s active\n", output.ActiveIcon(user.Active))
	return nil
}

// runUsersSave handles both create (id == 0) and update.
func runUsersSave(ctx context.Context, id int) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	editing := id > 0
	submit := func(ctx context.Context, payload map[string]any) (*domain.User, error) {
		if editing {
			return api.Users().Update(ctx, id, payload)
		}
		return api.Users().Create(ctx, payload)
	}

	if userInteractive {
		var existing *domain.User
		if editing {
			existing, err = api.Users().Get(ctx, id)
			if err != nil {
				output.Error("%s", userMessage(err))
				return err
			}
		}
		saved, err := tui.RunUserForm(api, submit, existing)
		if err != nil {
			output.Error("%s", userMessage(err))
			return err
		}
		if saved != nil {
			output.Success("saved user %d", saved.ID)
		}
		return nil
	}

	roles, err := api.Users().Roles(ctx)
	if err != nil {
		output.Error("%s", userMessage(err))
		return err
	}

	in := validate.UserInput{
		Email:       userEmail,
		Password:    userPassword,
		FirstName:   userFirstName,
		LastName:    userLastName,
		RoleID:      userRoleID,
		CountryIDs:  userCountryIDs,
		CategoryIDs: userCategoryIDs,
		Active:      userActive,
		Editing:     editing,
	}
	validate.ApplyRole(&in, roles)

	if fieldErrs := validate.ValidateUser(in, roles); len(fieldErrs) > 0 {
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			output.Error("%s: %s", f, fieldErrs[f])
		}
		return fmt.Errorf("validation failed")
	}

	payload, err := validate.BuildPayload(in)
	if err != nil {
		return err
	}

	saved, err := submit(ctx, payload)
	if err != nil {
		log.Error("saving user failed", "error", err)
		output.Error("%s", userMessage(err))
		return err
	}
	output.Success("saved user %d", saved.ID)
	return nil
}

func runUsersDelete(ctx context.Context, id int) error {
	if !userYes {
		return fmt.Errorf("refusing to delete without --yes")
	}

	api, err := newClient()
	if err != nil {
		return err
	}

	if err := api.Users().Delete(ctx, id); err != nil {
		log.Error("deleting user failed", "id", id, "error", err)
		output.Error("%s", userMessage(err))
		return err
	}
	output.Success("deleted user %d", id)
	return nil
}

func runUsersSearch(ctx context.Context, query string) error {
	api, err := newClient()
	if err != nil {
		return err
	}

	users, err := api.Users().Search(ctx, query)
	if err != nil {
		log.Error("searching users failed", "query", query, "error", err)
		output.Error("%s", userMessage(err))
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	}

	if len(users) == 0 {
		output.Muted("no matches")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName(), output.ActiveIcon(u.Active))
	}
	w.Flush()
	return nil
}
