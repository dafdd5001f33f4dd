// Package commands wires the inventaria CLI.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inventaria/inventaria/cmd/inventaria/tui"
	"github.com/inventaria/inventaria/internal/config"
	"github.com/inventaria/inventaria/pkg/client"
	"github.com/inventaria/inventaria/pkg/i18n"
)

var (
	// Global flags
	apiURL     string
	localeFlag string
	themeFlag  string
	verbose    bool
	jsonOutput bool

	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "inventaria",
	Short: "Inventaria - terminal admin client for the inventory API",
	Long: `Inventaria is the operator console for a multinational inventory system:
user administration, country and category reference data, analytics
dashboards and country-scoped data purges, all against the remote API.

Most commands have both a scriptable form and an interactive TUI
(--interactive where available).`,
	Version: "1.4.2",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if localeFlag != "" {
			cfg.Locale = localeFlag
		}
		if themeFlag != "" {
			cfg.Theme = themeFlag
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		i18n.Init(cfg.Locale)
		tui.SetTheme(cfg.Theme)

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Inventory API base URL (overrides INVENTARIA_API_URL)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "UI locale: en or es")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Accent theme: dark or light")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// newClient builds the API client from the resolved configuration.
func newClient() (*client.Client, error) {
	return client.New(client.Options{
		BaseURL: cfg.APIURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
		Debug:   verbose,
		Logger:  log.Default(),
	})
}

// userMessage extracts the operator-facing text from a failed request: the
// wire detail when present, else a generic fallback.
func userMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return i18n.T("common.error")
}
