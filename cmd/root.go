package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tabsweep",
		Short:         "tabsweep: close idle tabs once a window holds too many",
		Long:          "tabsweep tracks tab activity reported by a host, warns before closing the least recently used unpinned tabs once the pool exceeds its limit, and keeps a short-lived archive of what it closed.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPinCmd(app, true),
		newPinCmd(app, false),
		newSettingsCmd(app),
		newArchiveCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
