// Package validate re-derives the consumer's smart-loading rule over a
// generated sprite tree: enhanced tier preferred, base tier fallback,
// missing otherwise, with pixel dimensions checked against the
// configured tier sizes.
package validate

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"fighter-spritegen/internal/batch"
	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/pose"
)

// Tier identifies which resolution variant the fallback rule selected.
type Tier string

const (
	TierEnhanced Tier = "enhanced"
	TierBase     Tier = "base"
	TierMissing  Tier = "missing"
)

// Record is the validation outcome for one character × pose.
type Record struct {
	Character string
	Pose      string // canonical stored stem
	Tier      Tier   // tier the fallback rule selected
	Path      string
	Width     int
	Height    int
	ExpectedW int
	ExpectedH int
	Err       string // decode failure, if any

	// Per-tier presence, independent of the selection above.
	EnhancedFound bool
	BaseFound     bool
}

// OK reports whether a file was selected and its dimensions match the
// expected ones for its tier. A dimension mismatch is a distinct
// failure from a missing file.
func (r Record) OK() bool {
	return r.Tier != TierMissing && r.Err == "" &&
		r.Width == r.ExpectedW && r.Height == r.ExpectedH
}

// CharacterSummary aggregates one character's records.
type CharacterSummary struct {
	Character string
	Enhanced  int
	Base      int
	Missing   []string // pose stems with no file at either tier
	Records   []Record
}

// Report is the aggregate validation result. Expected/Found count
// individual files across both tiers; Enhanced counts character×pose
// entries whose enhanced-tier file exists.
type Report struct {
	TotalExpected int // character×pose entries
	FilesExpected int // entries × 2 tiers
	FilesFound    int
	Enhanced      int
	Characters    []CharacterSummary
}

// FullyValid reports the exit condition for a perfect asset set: every
// expected file found at both tiers, every entry enhanced, and every
// selected file dimensionally correct.
func (rep Report) FullyValid() bool {
	if rep.FilesFound != rep.FilesExpected || rep.Enhanced != rep.TotalExpected {
		return false
	}
	for _, cs := range rep.Characters {
		for _, r := range cs.Records {
			if !r.OK() {
				return false
			}
		}
	}
	return true
}

// Run validates every character × pose against the generated files in
// cfg.OutputDir. Requested pose names are canonicalized first, so
// aliased poses validate against the stem they were stored under.
// Run never fails; decode errors are reported per record.
func Run(cfg config.Config, characters, poses []string) Report {
	stems := pose.CanonicalStems(poses)

	var rep Report
	for _, ch := range characters {
		cs := CharacterSummary{Character: ch}
		for _, stem := range stems {
			rec := checkOne(cfg, ch, stem)
			switch rec.Tier {
			case TierEnhanced:
				rep.Enhanced++
				cs.Enhanced++
			case TierBase:
				cs.Base++
			default:
				cs.Missing = append(cs.Missing, stem)
			}
			if rec.EnhancedFound {
				rep.FilesFound++
			}
			if rec.BaseFound {
				rep.FilesFound++
			}
			rep.TotalExpected++
			rep.FilesExpected += 2
			cs.Records = append(cs.Records, rec)
		}
		rep.Characters = append(rep.Characters, cs)
	}
	return rep
}

// checkOne applies the fallback rule for a single character/stem and
// measures the selected file.
func checkOne(cfg config.Config, character, stem string) Record {
	rec := Record{Character: character, Pose: stem, Tier: TierMissing}

	enhancedPath := batch.SpritePath(cfg.OutputDir, character, stem, true, cfg.Ext())
	basePath := batch.SpritePath(cfg.OutputDir, character, stem, false, cfg.Ext())
	rec.EnhancedFound = fileExists(enhancedPath)
	rec.BaseFound = fileExists(basePath)

	switch {
	case rec.EnhancedFound:
		rec.Tier = TierEnhanced
		rec.Path = enhancedPath
		rec.ExpectedW = cfg.EnhancedWidth
		rec.ExpectedH = cfg.EnhancedHeight
	case rec.BaseFound:
		rec.Tier = TierBase
		rec.Path = basePath
		rec.ExpectedW = cfg.Width
		rec.ExpectedH = cfg.Height
	default:
		return rec
	}

	w, h, err := imageDims(rec.Path)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}
	rec.Width = w
	rec.Height = h
	return rec
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func imageDims(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("validate: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("validate: decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
