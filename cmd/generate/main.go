package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"fighter-spritegen/internal/archetype"
	"fighter-spritegen/internal/batch"
	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/palette"
)

// defaultCharacters is the shipped roster used when -characters is omitted.
var defaultCharacters = []string{"ryu", "ken", "chun_li", "zangief", "sagat", "lei_wulong"}

// defaultPoses is the standard pose set the consuming game loads.
var defaultPoses = []string{"idle", "walk", "attack", "jump"}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	charactersFlag := flag.String("characters", "", "Comma-separated character ids (default: shipped roster)")
	posesFlag := flag.String("poses", "", "Comma-separated pose names (default: idle,walk,attack,jump)")
	outputDir := flag.String("output", "", "Output directory (default: generated_sprites)")
	paletteName := flag.String("palette", "", "Palette name for characters without their own palette")
	archetypeName := flag.String("archetype", "", "Archetype for characters without a roster entry")
	width := flag.Int("width", 0, "Base sprite width (default: 64)")
	height := flag.Int("height", 0, "Base sprite height (default: 96)")
	enhancedWidth := flag.Int("enhanced-width", 0, "Enhanced sprite width (default: 4x base)")
	enhancedHeight := flag.Int("enhanced-height", 0, "Enhanced sprite height (default: 4x base)")
	dither := flag.Bool("dither", false, "Apply retro 16-color dithering")
	format := flag.String("format", "", "Output format: png or webp (default: png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Generate only the first N characters for testing")

	flag.Parse()

	_ = godotenv.Load()

	batch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir:      *outputDir,
		Palette:        *paletteName,
		Archetype:      *archetypeName,
		Format:         *format,
		Workers:        *workers,
		Width:          *width,
		Height:         *height,
		EnhancedWidth:  *enhancedWidth,
		EnhancedHeight: *enhancedHeight,
		Dither:         *dither,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	characters := splitList(*charactersFlag, defaultCharacters)
	poses := splitList(*posesFlag, defaultPoses)

	if *testN > 0 && *testN < len(characters) {
		characters = characters[:*testN]
	}

	fmt.Printf("Fighter Sprite Generator → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Characters: %s\n", strings.Join(characters, ", "))
	fmt.Printf("Poses: %s\n", strings.Join(poses, ", "))
	fmt.Printf("Tiers: %dx%d base, %dx%d enhanced (%dx), Workers: %d\n",
		cfg.Width, cfg.Height, cfg.EnhancedWidth, cfg.EnhancedHeight, cfg.Scale(), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	opts := batch.Options{
		Config:     cfg,
		Palettes:   palette.NewRegistry(),
		Archetypes: archetype.NewRegistry(),
	}
	paths, results := batch.Generate(opts, characters, poses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	total := 0
	for _, ch := range characters {
		total += len(paths[ch])
		fmt.Printf("  %s: %d sprites\n", ch, len(paths[ch]))
	}

	var failed []batch.Result
	for _, r := range results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Generated: %d sprites (%d items, %d failed)\n", total, len(results), len(failed))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, r := range failed[:limit] {
			fmt.Printf("  %s/%s: %s\n", r.Character, r.Pose, strings.Join(r.Errors, "; "))
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, batch.BuildManifest(cfg, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

func splitList(s string, def []string) []string {
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
