package cmd

import (
	"fmt"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/spf13/cobra"
)

// newPinCmd builds "pin" or "unpin". A running scheduler picks the change up from the state file.
func newPinCmd(app *app, pinned bool) *cobra.Command {
	use, short, verb := "pin <tab-id>...", "Exempt tabs from inactivity eviction", "Pinned"
	if !pinned {
		use, short, verb = "unpin <tab-id>...", "Make tabs eligible for eviction again", "Unpinned"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := application.NewPinRegistry(app.repo)
			if err := registry.Load(cmd.Context()); err != nil {
				return err
			}

			for _, arg := range args {
				id := domain.TabID(arg)
				if err := registry.SetPinned(cmd.Context(), id, pinned); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, id)
			}

			return nil
		},
	}
}
