package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/ridgeline/internal/grain"
	"github.com/MeKo-Tech/ridgeline/internal/paint"
	"github.com/MeKo-Tech/ridgeline/internal/render"
	"github.com/MeKo-Tech/ridgeline/internal/scene"
	"github.com/MeKo-Tech/ridgeline/internal/terrain"
	"github.com/MeKo-Tech/ridgeline/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate wallpapers",
	Long:  `Generate one or more procedural mountain wallpapers from a seed.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("width", 3840, "Image width in pixels")
	generateCmd.Flags().Int("height", 2160, "Image height in pixels")
	generateCmd.Flags().Int64("seed", 1337, "Deterministic seed for terrain generation")
	generateCmd.Flags().String("format", "png", "Output format: png or svg")

	// Batch flags
	generateCmd.Flags().IntP("count", "n", 1, "Number of wallpapers to generate (seed, seed+1, ...)")
	generateCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	generateCmd.Flags().Bool("progress", true, "Show progress bar during batch generation")

	// Scene tuning flags
	generateCmd.Flags().Int("mountains", 8, "Number of mountain range layers")
	generateCmd.Flags().Int("peaks-min", 9, "Minimum visible peaks per layer")
	generateCmd.Flags().Int("peaks-max", 22, "Maximum visible peaks per layer")
	generateCmd.Flags().Float64("peakiness", 4, "Peakiness tuning for the layer band sweep")
	generateCmd.Flags().Float64("roughness", 0.2, "Cliff roughness (reserved, no effect yet)")
	generateCmd.Flags().Float64("position-start", 0.15, "Mountain band start as a height fraction")
	generateCmd.Flags().Float64("position-end", 0.7, "Mountain band end as a height fraction")
	generateCmd.Flags().Float64("sun-height", 0.85, "Sun height as a fraction of image height")
	generateCmd.Flags().Float64("sun-size", 0.1, "Sun radius as a fraction of image height")
	generateCmd.Flags().Float64("fog-height", 0.8, "Fog height fraction (reserved)")
	generateCmd.Flags().Float64("fog-thickness", 1, "Fog thickness for the farthest layer")

	// Finishing flags (PNG only)
	generateCmd.Flags().Bool("grain", false, "Overlay subtle film grain")
	generateCmd.Flags().Float64("grain-strength", 0.04, "Grain strength")
	generateCmd.Flags().Float64("soften", 0, "Gaussian soften sigma (0 disables)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.width", "width"},
		{"generate.height", "height"},
		{"generate.seed", "seed"},
		{"generate.format", "format"},
		{"generate.count", "count"},
		{"generate.workers", "workers"},
		{"generate.progress", "progress"},
		{"generate.mountains", "mountains"},
		{"generate.peaks_min", "peaks-min"},
		{"generate.peaks_max", "peaks-max"},
		{"generate.peakiness", "peakiness"},
		{"generate.roughness", "roughness"},
		{"generate.position_start", "position-start"},
		{"generate.position_end", "position-end"},
		{"generate.sun_height", "sun-height"},
		{"generate.sun_size", "sun-size"},
		{"generate.fog_height", "fog-height"},
		{"generate.fog_thickness", "fog-thickness"},
		{"generate.grain", "grain"},
		{"generate.grain_strength", "grain-strength"},
		{"generate.soften", "soften"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func sceneParamsFromConfig() scene.Parameters {
	return scene.Parameters{
		Width:  viper.GetInt("generate.width"),
		Height: viper.GetInt("generate.height"),

		SunHeight: viper.GetFloat64("generate.sun_height"),
		SunSize:   viper.GetFloat64("generate.sun_size"),

		FogHeight:    viper.GetFloat64("generate.fog_height"),
		FogThickness: viper.GetFloat64("generate.fog_thickness"),

		MountainRangeCount:    viper.GetInt("generate.mountains"),
		MountainPositionStart: viper.GetFloat64("generate.position_start"),
		MountainPositionEnd:   viper.GetFloat64("generate.position_end"),
		MountainPeaksMin:      viper.GetInt("generate.peaks_min"),
		MountainPeaksMax:      viper.GetInt("generate.peaks_max"),
		MountainRoughness:     viper.GetFloat64("generate.roughness"),
		MountainPeakiness:     viper.GetFloat64("generate.peakiness"),
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	format := viper.GetString("generate.format")
	if format != "png" && format != "svg" {
		return fmt.Errorf("invalid format %q: must be 'png' or 'svg'", format)
	}

	params := sceneParamsFromConfig()
	if err := params.Validate(); err != nil {
		return err
	}

	seed := viper.GetInt64("generate.seed")
	count := viper.GetInt("generate.count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	gen := &wallpaperGenerator{
		params:    params,
		palette:   paint.Default,
		format:    format,
		outputDir: viper.GetString("output-dir"),
		grain:     viper.GetBool("generate.grain"),
		grainStr:  viper.GetFloat64("generate.grain_strength"),
		soften:    float32(viper.GetFloat64("generate.soften")),
		logger:    logger,
	}

	if count == 1 {
		logger.Info("Generating wallpaper",
			"seed", seed,
			"size", fmt.Sprintf("%dx%d", params.Width, params.Height),
			"format", format,
		)
		path, err := gen.Generate(context.Background(), worker.Task{Seed: seed})
		if err != nil {
			return fmt.Errorf("failed to generate wallpaper: %w", err)
		}
		logger.Info("Wallpaper generated", "path", path)
		return nil
	}

	return runBatchGenerate(gen, seed, count)
}

func runBatchGenerate(gen *wallpaperGenerator, seed int64, count int) error {
	workers := viper.GetInt("generate.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	showProgress := viper.GetBool("generate.progress")

	logger.Info("Starting batch wallpaper generation",
		"count", count,
		"first_seed", seed,
		"workers", workers,
		"output_dir", gen.outputDir,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	tasks := make([]worker.Task, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, worker.Task{Index: i, Seed: seed + int64(i)})
	}

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  gen,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Wallpaper generation failed", "seed", r.Task.Seed, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return fmt.Errorf("%d wallpapers failed to generate", failedCount)
	}
	return nil
}

// wallpaperGenerator renders one scene per task. It satisfies
// worker.Generator so batches run through the pool.
type wallpaperGenerator struct {
	params    scene.Parameters
	palette   paint.Palette
	format    string
	outputDir string
	grain     bool
	grainStr  float64
	soften    float32
	logger    *slog.Logger
}

func (g *wallpaperGenerator) Generate(ctx context.Context, task worker.Task) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ops, err := scene.Compose(g.params, g.palette, terrain.NewSource(task.Seed))
	if err != nil {
		return "", fmt.Errorf("failed to compose scene: %w", err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(g.outputDir, fmt.Sprintf("wallpaper_%d.%s", task.Seed, g.format))

	switch g.format {
	case "svg":
		err = g.writeSVG(path, ops)
	default:
		err = g.writePNG(path, ops, task.Seed)
	}
	if err != nil {
		return "", err
	}

	g.log().Debug("Wallpaper written", "seed", task.Seed, "path", path)
	return path, nil
}

func (g *wallpaperGenerator) writePNG(path string, ops []render.Op, seed int64) error {
	surf, err := render.NewImage(g.params.Width, g.params.Height)
	if err != nil {
		return err
	}
	render.Play(surf, ops)

	img := surf.NRGBA()
	if g.soften > 0 {
		img = grain.Soften(img, g.soften)
	}
	if g.grain {
		p := grain.DefaultParams(seed)
		p.Strength = g.grainStr
		img = grain.Apply(img, p)
	}

	return writePNGFile(path, img)
}

func (g *wallpaperGenerator) writeSVG(path string, ops []render.Op) error {
	surf, err := render.NewSVG(g.params.Width, g.params.Height)
	if err != nil {
		return err
	}
	render.Play(surf, ops)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := surf.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

func (g *wallpaperGenerator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

func writePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
