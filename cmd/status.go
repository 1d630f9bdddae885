package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/tabsweep/internal/adapters/render/status"
	"github.com/bnema/tabsweep/internal/application"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Settings   settingsOutput    `json:"settings"`
	Pins       []string          `json:"pins"`
	Countdowns []countdownOutput `json:"countdowns"`
}

type countdownOutput struct {
	TabID      string    `json:"tab_id"`
	Title      string    `json:"title,omitempty"`
	URL        string    `json:"url,omitempty"`
	Remaining  string    `json:"remaining"`
	Warned     bool      `json:"warned"`
	ComputedAt time.Time `json:"computed_at"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show settings, pinned tabs and the countdowns of the last eviction run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := application.NewStatusReader(app.repo, app.repo, app.repo, app.cfg.Settings())
			status, err := reader.Read(cmd.Context())
			if err != nil {
				return err
			}

			return writeStatusOutput(cmd, app, status, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, status application.PersistedStatus, asJSON bool) error {
	if asJSON {
		out := statusOutput{
			Settings: settingsOutput{
				InactivityLimit: status.Settings.InactivityLimit.String(),
				MaxTabs:         status.Settings.MaxTabs,
			},
			Pins:       make([]string, 0, len(status.Pins)),
			Countdowns: make([]countdownOutput, 0, len(status.Countdowns)),
		}
		for _, id := range status.Pins {
			out.Pins = append(out.Pins, string(id))
		}
		for _, c := range status.Countdowns {
			out.Countdowns = append(out.Countdowns, countdownOutput{
				TabID:      string(c.TabID),
				Title:      c.Title,
				URL:        c.URL,
				Remaining:  c.Remaining.String(),
				Warned:     c.Warned,
				ComputedAt: c.ComputedAt,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
