package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/cli"
	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
)

var (
	cfg     *cli.Config
	presets *editor.PresetRegistry
)

var rootCmd = &cobra.Command{
	Use:               "pixelforge",
	Short:             "Apply photo edits from the command line",
	Version:           cli.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads configuration, installs the logger and builds the preset
// registry shared by every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	c, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = c
	editor.SetLogger(cfg.NewLogger(os.Stderr))

	presets = editor.NewPresetRegistry()
	if cfg.PresetsFile != "" {
		if err := loadPresets(cfg.PresetsFile); err != nil {
			return err
		}
	}
	return nil
}

func loadPresets(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading presets: %w", err)
	}
	defer f.Close()
	n, err := presets.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	editor.Logger().Debug("presets loaded", "file", path, "count", n)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
