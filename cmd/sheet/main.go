// Command sheet assembles generated base-tier sprites into a contact
// sheet image for quick visual review.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	_ "golang.org/x/image/webp"

	"fighter-spritegen/internal/batch"
	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/pose"
	"fighter-spritegen/internal/postprocess"
)

var defaultCharacters = []string{"ryu", "ken", "chun_li", "zangief", "sagat", "lei_wulong"}

var defaultPoses = []string{"idle", "walk", "attack", "jump"}

func main() {
	dir := flag.String("dir", "generated_sprites", "Sprite directory to read")
	charactersFlag := flag.String("characters", "", "Comma-separated character ids")
	posesFlag := flag.String("poses", "", "Comma-separated pose names")
	out := flag.String("out", "sheet.png", "Output sheet path")
	upscale := flag.Int("scale", 4, "Nearest-neighbor upscale factor")
	format := flag.String("format", "png", "Sprite file format: png or webp")
	columns := flag.Int("columns", 0, "Tiles per row (default: one per pose)")

	flag.Parse()

	var cfg config.Config
	cfg.Resolve(config.Flags{OutputDir: *dir, Format: *format})

	characters := splitList(*charactersFlag, defaultCharacters)
	poses := splitList(*posesFlag, defaultPoses)

	// One row per character, one column per pose stem. Aliased pose
	// requests collapse to a single stem so no tile repeats.
	stems := pose.CanonicalStems(poses)

	var tiles []*image.NRGBA
	loaded := 0
	for _, ch := range characters {
		for _, stem := range stems {
			path := batch.SpritePath(cfg.OutputDir, ch, stem, false, cfg.Ext())
			img, err := loadNRGBA(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s/%s: %v\n", ch, stem, err)
				tiles = append(tiles, nil)
				continue
			}
			tiles = append(tiles, img)
			loaded++
		}
	}

	if loaded == 0 {
		fmt.Fprintln(os.Stderr, "Error: no sprites found. Run generate first.")
		os.Exit(1)
	}

	cols := *columns
	if cols < 1 {
		cols = len(stems)
	}
	sheet := postprocess.BuildSheet(tiles, cols, *upscale)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode sheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sheet: %s (%d sprites, %d per row)\n", *out, loaded, cols)
}

func loadNRGBA(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if n, ok := src.(*image.NRGBA); ok {
		return n, nil
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst, nil
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
