// Package batch drives sprite generation across a character × pose
// matrix using a worker pool, and records the output paths each work
// item produced.
package batch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"fighter-spritegen/internal/archetype"
	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/palette"
	"fighter-spritegen/internal/pose"
	"fighter-spritegen/internal/postprocess"
	"fighter-spritegen/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Options holds the shared read-only resources for a batch run.
type Options struct {
	Config     config.Config
	Palettes   *palette.Registry
	Archetypes *archetype.Registry
}

// Result holds the outcome of one (character, pose) work item. A partly
// failed item can still carry the paths of the tier that succeeded.
type Result struct {
	Character string
	Pose      string
	Stem      string
	Paths     []string
	Errors    []string
}

// Failed reports whether any tier of this item failed.
func (r Result) Failed() bool { return len(r.Errors) > 0 }

// SpritePath returns the storage path for one sprite file:
// <outDir>/<character>/sprites/<character>_<stem>[_enhanced]<ext>.
func SpritePath(outDir, character, stem string, enhanced bool, ext string) string {
	name := character + "_" + stem
	if enhanced {
		name += "_enhanced"
	}
	return filepath.Join(outDir, character, "sprites", name+ext)
}

// Generate renders every requested pose for every character at both
// resolution tiers and returns character id → generated paths, plus the
// per-item results for reporting. Single-item failures are logged and
// skipped; the batch always completes.
func Generate(opts Options, characters, poses []string) (map[string][]string, []Result) {
	type item struct {
		character string
		pose      string
	}

	var items []item
	for _, ch := range characters {
		for _, p := range poses {
			items = append(items, item{character: ch, pose: p})
		}
	}

	total := len(items)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f sprites/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool across (character, pose) pairs. Registries are
	// read-only; results land in disjoint slice slots, so no lock.
	workers := opts.Config.Workers
	if workers < 1 {
		workers = 1
	}
	itemChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range itemChan {
				results[idx] = renderItem(opts, items[idx].character, items[idx].pose)
				processed.Add(1)
			}
		}()
	}

	for i := range items {
		itemChan <- i
	}
	close(itemChan)

	wg.Wait()
	close(done)

	paths := make(map[string][]string, len(characters))
	for _, ch := range characters {
		paths[ch] = nil
	}
	for _, r := range results {
		paths[r.Character] = append(paths[r.Character], r.Paths...)
	}

	return paths, results
}

// renderItem renders the base and enhanced tiers for one pose. The two
// tiers are independent rasterization passes, not a resize: outlines
// and edges are redrawn at native resolution.
func renderItem(opts Options, character, poseName string) Result {
	cfg := opts.Config
	res := Result{
		Character: character,
		Pose:      poseName,
		Stem:      pose.CanonicalStem(poseName),
	}

	// Character-specific palette and archetype take precedence over
	// the configured ones.
	palName := character
	if !opts.Palettes.Has(character) {
		palName = cfg.PaletteName
	}
	pal := opts.Palettes.Resolve(palName)

	archName := cfg.ArchetypeName
	if name, ok := archetype.CharacterArchetype(character); ok {
		archName = name
	}
	arch := opts.Archetypes.Resolve(archName)

	tiers := []struct {
		enhanced bool
		w, h     int
		scale    int
	}{
		{false, cfg.Width, cfg.Height, 1},
		{true, cfg.EnhancedWidth, cfg.EnhancedHeight, cfg.Scale()},
	}

	for _, tier := range tiers {
		img := raster.RenderFigure(pal, arch, poseName, tier.w, tier.h, tier.scale)
		if cfg.Dithering {
			img = postprocess.Dither(img)
		}

		outPath := SpritePath(cfg.OutputDir, character, res.Stem, tier.enhanced, cfg.Ext())
		if err := save(img, outPath, cfg.Format); err != nil {
			Logger().Warn("sprite save failed",
				"character", character, "pose", poseName,
				"enhanced", tier.enhanced, "error", err)
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Paths = append(res.Paths, outPath)
	}

	return res
}

// save encodes the image in memory first so the file on disk is always
// written whole, then creates any missing parent directories.
func save(img *image.NRGBA, path, format string) error {
	var buf bytes.Buffer
	var err error
	switch format {
	case "webp":
		err = nativewebp.Encode(&buf, img, nil)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return fmt.Errorf("batch: encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
