package main

import (
	"github.com/spf13/cobra"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/cli"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update pixelforge to the latest GitHub release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolP("yes", "y", false, "Install without asking")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	return cli.NewUpdater(cmd.InOrStdin(), cmd.OutOrStdout()).Run(yes)
}
