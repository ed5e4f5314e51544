package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/cli"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show image format, dimensions and EXIF summary",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringP("input", "i", "", "Image to inspect")
	infoCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("input")
	info, err := cli.ReadImageInfo(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "File: %s\n%s\n", path, info)
	return nil
}
