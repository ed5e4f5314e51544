package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().StringP("file", "f", "", "Additional presets file (YAML)")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		if err := loadPresets(path); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range presets.Names() {
		p, _ := presets.Get(name)
		fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Description)
	}
	return tw.Flush()
}
