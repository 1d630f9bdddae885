package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/tabsweep/internal/adapters/render/status"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/spf13/cobra"
)

type closedEntryOutput struct {
	ID         string    `json:"id"`
	TabID      string    `json:"tab_id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	FavIconURL string    `json:"fav_icon_url,omitempty"`
	TimeClosed time.Time `json:"time_closed"`
}

func newArchiveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the tabs closed for inactivity",
	}

	cmd.AddCommand(
		newArchiveListCmd(app),
		newArchiveSweepCmd(app),
		newArchiveClearCmd(app),
	)

	return cmd
}

func newArchiveListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closed tabs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			archive, closeArchive, err := app.closedArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer closeWith(closeArchive, &err)

			entries, err := archive.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeEntriesJSON(cmd, entries)
			}

			rendered, err := app.archiveRenderer(entries, statusadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render archive: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newArchiveSweepCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove entries older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			archive, closeArchive, err := app.closedArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer closeWith(closeArchive, &err)

			removed, err := archive.Sweep(cmd.Context(), app.now(), archive.Retention())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d closed tab(s) older than %s\n", removed, archive.Retention())
			return nil
		},
	}
}

func newArchiveClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every closed tab entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			archive, closeArchive, err := app.closedArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer closeWith(closeArchive, &err)

			if err := archive.Clear(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared closed tabs")
			return nil
		},
	}
}

func writeEntriesJSON(cmd *cobra.Command, entries []domain.ClosedEntry) error {
	out := make([]closedEntryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, closedEntryOutput{
			ID:         entry.ID,
			TabID:      string(entry.TabID),
			Title:      entry.Title,
			URL:        entry.URL,
			FavIconURL: entry.FavIconURL,
			TimeClosed: entry.TimeClosed,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func closeWith(closeFn func() error, err *error) {
	if closeErr := closeFn(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close archive: %w", closeErr)
	}
}
