package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/cli"
	"github.com/rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor/pkg/editor"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Load an image, replay an edit recipe and export the result",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("input", "i", "", "Input image")
	renderCmd.Flags().StringP("recipe", "r", "", "Edit recipe (YAML)")
	renderCmd.Flags().StringP("output", "o", "", "Output image (.png, .jpg, .gif)")
	renderCmd.Flags().StringP("preset", "p", "", "Preset applied before the recipe")
	renderCmd.Flags().Int("quality", 0, "JPEG quality (1-100), defaults to PIXELFORGE_JPEG_QUALITY")
	renderCmd.Flags().Bool("preview", false, "Show the result in the terminal")
	renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	recipePath, _ := cmd.Flags().GetString("recipe")
	outputPath, _ := cmd.Flags().GetString("output")
	presetName, _ := cmd.Flags().GetString("preset")
	quality, _ := cmd.Flags().GetInt("quality")
	preview, _ := cmd.Flags().GetBool("preview")

	if outputPath == "" && !preview {
		return fmt.Errorf("nothing to do: pass --output and/or --preview")
	}
	if quality == 0 {
		quality = cfg.JPEGQuality
	}

	var recipe *cli.Recipe
	if recipePath != "" {
		r, err := cli.LoadRecipeFile(recipePath)
		if err != nil {
			return fmt.Errorf("loading recipe: %w", err)
		}
		recipe = r
	}

	img, format, err := cli.LoadImage(inputPath)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	start := time.Now()
	s := editor.NewSession(editor.Options{
		HistoryCapacity: cfg.HistoryCapacity,
		Fonts:           editor.LoadFontSet(cfg.FontPath),
		Presets:         presets,
	})
	if err := s.Load(img); err != nil {
		return err
	}
	if presetName != "" {
		if err := s.ApplyPreset(presetName); err != nil {
			return err
		}
		s.CaptureSnapshot()
	}
	if recipe != nil {
		if err := recipe.Apply(s, filepath.Dir(recipePath)); err != nil {
			return fmt.Errorf("applying recipe: %w", err)
		}
	}
	editor.Logger().Info("render complete",
		"input", inputPath, "format", format,
		"renders", s.RenderCount(), "elapsed", time.Since(start))

	out := s.Output()
	if outputPath != "" {
		if err := cli.SaveSession(outputPath, s, quality); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		b := out.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d x %d)\n", outputPath, b.Dx(), b.Dy())
	}
	if preview {
		p := cli.NewPreviewer(cmd.OutOrStdout(), cfg.PreviewDebug)
		if err := p.Preview(out); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}
