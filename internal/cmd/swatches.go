package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/ridgeline/internal/paint"
	"github.com/MeKo-Tech/ridgeline/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var swatchesCmd = &cobra.Command{
	Use:   "swatches",
	Short: "Render the palette gradients as swatch strips",
	Long:  "Render each named palette gradient as a horizontal PNG strip, useful when tuning colors.",
	RunE:  runSwatches,
}

func init() {
	rootCmd.AddCommand(swatchesCmd)

	swatchesCmd.Flags().Int("swatch-width", 512, "Swatch strip width in pixels")
	swatchesCmd.Flags().Int("swatch-height", 64, "Swatch strip height in pixels")

	if err := viper.BindPFlag("swatches.width", swatchesCmd.Flags().Lookup("swatch-width")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("swatches.height", swatchesCmd.Flags().Lookup("swatch-height")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runSwatches(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	width := viper.GetInt("swatches.width")
	height := viper.GetInt("swatches.height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("swatch size must be positive, got %dx%d", width, height)
	}

	outputDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, entry := range paint.Default.Entries() {
		surf, err := render.NewImage(width, height)
		if err != nil {
			return err
		}
		surf.FillRect(
			render.Rect{W: float64(width), H: float64(height)},
			entry.Gradient.Linear(0, 0, float64(width), 0),
		)

		path := filepath.Join(outputDir, "swatch_"+entry.Name+".png")
		if err := writePNGFile(path, surf.NRGBA()); err != nil {
			return err
		}
		logger.Info("Swatch written", "gradient", entry.Name, "path", path)
	}

	return nil
}
