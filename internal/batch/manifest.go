package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fighter-spritegen/internal/config"
)

// ManifestEntry describes one generated sprite file.
type ManifestEntry struct {
	Character string `json:"character"`
	Pose      string `json:"pose"` // canonical stored stem
	Tier      string `json:"tier"` // "base" or "enhanced"
	Image     string `json:"image"` // path relative to the output dir
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// BuildManifest converts batch results into manifest entries, skipping
// items whose files were not written.
func BuildManifest(cfg config.Config, results []Result) []ManifestEntry {
	var entries []ManifestEntry
	for _, r := range results {
		for _, p := range r.Paths {
			rel, err := filepath.Rel(cfg.OutputDir, p)
			if err != nil {
				rel = p
			}
			e := ManifestEntry{
				Character: r.Character,
				Pose:      r.Stem,
				Tier:      "base",
				Image:     filepath.ToSlash(rel),
				Width:     cfg.Width,
				Height:    cfg.Height,
			}
			if isEnhancedPath(p) {
				e.Tier = "enhanced"
				e.Width = cfg.EnhancedWidth
				e.Height = cfg.EnhancedHeight
			}
			entries = append(entries, e)
		}
	}
	return entries
}

func isEnhancedPath(p string) bool {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	const suffix = "_enhanced"
	return len(stem) > len(suffix) && stem[len(stem)-len(suffix):] == suffix
}

// WriteManifest writes manifest.json to the given path.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
