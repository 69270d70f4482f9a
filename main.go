package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/kastheco/navrail/app"
	cmd2 "github.com/kastheco/navrail/cmd"
	"github.com/kastheco/navrail/config"
	initcmd "github.com/kastheco/navrail/internal/initcmd"
	sentrypkg "github.com/kastheco/navrail/internal/sentry"
	"github.com/kastheco/navrail/log"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	selectFlag string
	rootCmd    = &cobra.Command{
		Use:   "navrail",
		Short: "navrail - a collapsible sidebar navigator for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(sentrypkg.Options{
				DSN:              cfg.SentryDSN,
				Version:          version,
				TelemetryEnabled: cfg.IsTelemetryEnabled(),
			}); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(false, cfg.IsTelemetryEnabled() && sentrypkg.IsEnabled())
			defer log.Close()

			return app.Run(ctx, cfg, selectFlag)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored collapse and show-more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			store, err := config.OpenPreferenceStore(config.LoadConfig())
			if err != nil {
				return fmt.Errorf("failed to open preferences: %w", err)
			}
			defer store.Close()
			config.ResetNavPreferences(store)
			fmt.Println("Sidebar preferences have been reset")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			if treePath, err := cfg.TreePath(); err == nil {
				fmt.Printf("Tree: %s\n", treePath)
			}
			if prefsPath, err := config.PreferencesPath(cfg); err == nil {
				fmt.Printf("Preferences: %s\n", prefsPath)
			}
			fmt.Printf("Log: %s\n", log.FileName())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of navrail",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("navrail version %s\n", version)
			fmt.Printf("https://github.com/kastheco/navrail/releases/tag/v%s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&selectFlag, "select", "s", "",
		"Key of the link to start selected")

	var forceFlag bool
	var cleanFlag bool

	setupCmd := &cobra.Command{
		Use:     "setup",
		Aliases: []string{"init"},
		Short:   "Write config.toml and a starter navigation tree",
		Long: `Run an interactive form to:
  1. Pick the tree file format and rail icons
  2. Set the rail and sidebar widths and the palette
  3. Write ~/.config/navrail/config.toml and a starter tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initcmd.Run(initcmd.Options{
				Force: forceFlag,
				Clean: cleanFlag,
			})
		},
	}

	setupCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing tree file with the starter tree")
	setupCmd.Flags().BoolVar(&cleanFlag, "clean", false, "Ignore existing config, start with factory defaults")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(cmd2.NewTreeCmd())
	rootCmd.AddCommand(cmd2.NewPrefsCmd())
	rootCmd.AddCommand(cmd2.NewHistoryCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
