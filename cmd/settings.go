package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/spf13/cobra"
)

type settingsOutput struct {
	InactivityLimit string `json:"inactivity_limit"`
	MaxTabs         int    `json:"max_tabs"`
}

func newSettingsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the eviction settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := application.NewSettingsStore(app.repo, app.cfg.Settings())
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			return writeSettings(cmd, store.Get(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var inactivityLimit time.Duration
	var maxTabs int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the inactivity limit or the tab limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch domain.SettingsPatch
			if cmd.Flags().Changed("inactivity-limit") {
				patch.InactivityLimit = &inactivityLimit
			}
			if cmd.Flags().Changed("max-tabs") {
				patch.MaxTabs = &maxTabs
			}
			if patch.Empty() {
				return errors.New("nothing to change: pass --inactivity-limit or --max-tabs")
			}

			store := application.NewSettingsStore(app.repo, app.cfg.Settings())
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			settings, err := store.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return writeSettings(cmd, settings, false)
		},
	}

	cmd.Flags().DurationVar(&inactivityLimit, "inactivity-limit", 0, "Idle time before a tab may be closed (at least 10s)")
	cmd.Flags().IntVar(&maxTabs, "max-tabs", 0, "Number of tabs kept open before eviction starts (at least 1)")

	return cmd
}

func writeSettings(cmd *cobra.Command, settings domain.Settings, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(settingsOutput{
			InactivityLimit: settings.InactivityLimit.String(),
			MaxTabs:         settings.MaxTabs,
		})
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "inactivity limit: %s\nmax tabs: %d\n", settings.InactivityLimit, settings.MaxTabs)
	return err
}
