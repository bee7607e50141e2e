package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/validate"
)

var defaultCharacters = []string{"ryu", "ken", "chun_li", "zangief", "sagat", "lei_wulong"}

var defaultPoses = []string{"idle", "walk", "attack", "jump"}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dir := flag.String("dir", "", "Sprite directory to validate (default: generated_sprites)")
	charactersFlag := flag.String("characters", "", "Comma-separated character ids")
	posesFlag := flag.String("poses", "", "Comma-separated pose names")
	format := flag.String("format", "", "Expected file format: png or webp")
	width := flag.Int("width", 0, "Expected base width")
	height := flag.Int("height", 0, "Expected base height")
	enhancedWidth := flag.Int("enhanced-width", 0, "Expected enhanced width")
	enhancedHeight := flag.Int("enhanced-height", 0, "Expected enhanced height")

	flag.Parse()

	_ = godotenv.Load()

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
		OutputDir:      *dir,
		Format:         *format,
		Width:          *width,
		Height:         *height,
		EnhancedWidth:  *enhancedWidth,
		EnhancedHeight: *enhancedHeight,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	characters := splitList(*charactersFlag, defaultCharacters)
	poses := splitList(*posesFlag, defaultPoses)

	fmt.Println("=== SPRITE LOADING VALIDATION ===")
	fmt.Printf("Directory: %s\n", cfg.OutputDir)

	rep := validate.Run(cfg, characters, poses)

	for _, cs := range rep.Characters {
		fmt.Printf("\n%s:\n", cs.Character)
		for _, rec := range cs.Records {
			switch {
			case rec.Tier == validate.TierMissing:
				fmt.Printf("  %s: MISSING\n", rec.Pose)
			case rec.Err != "":
				fmt.Printf("  %s: %s - decode failed: %s\n", rec.Pose, rec.Tier, rec.Err)
			case !rec.OK():
				fmt.Printf("  %s: %s (%dx%d) - size mismatch, expected %dx%d\n",
					rec.Pose, rec.Tier, rec.Width, rec.Height, rec.ExpectedW, rec.ExpectedH)
			default:
				fmt.Printf("  %s: %s (%dx%d) - ok\n", rec.Pose, rec.Tier, rec.Width, rec.Height)
			}
		}
	}

	fmt.Println("\n=== RESULTS ===")
	fmt.Printf("Files: %d/%d found\n", rep.FilesFound, rep.FilesExpected)
	fmt.Printf("Enhanced: %d/%d entries\n", rep.Enhanced, rep.TotalExpected)
	if rep.FilesExpected > 0 {
		fmt.Printf("Success rate: %.1f%%\n", float64(rep.FilesFound)/float64(rep.FilesExpected)*100)
	}
	if rep.TotalExpected > 0 {
		fmt.Printf("Enhancement rate: %.1f%%\n", float64(rep.Enhanced)/float64(rep.TotalExpected)*100)
	}

	fmt.Println("\n=== CHARACTER SUMMARY ===")
	for _, cs := range rep.Characters {
		fmt.Printf("%s: %d/%d (%d enhanced, %d base, %d missing)\n",
			cs.Character, cs.Enhanced+cs.Base, len(cs.Records), cs.Enhanced, cs.Base, len(cs.Missing))
	}

	if rep.FullyValid() {
		fmt.Println("\nAll sprites found at enhanced quality.")
		return
	}
	fmt.Println("\nValidation incomplete: see report above.")
	os.Exit(1)
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
