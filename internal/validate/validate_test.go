package validate

import (
	"os"
	"testing"

	"fighter-spritegen/internal/archetype"
	"fighter-spritegen/internal/batch"
	"fighter-spritegen/internal/config"
	"fighter-spritegen/internal/palette"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{Workers: 2}
	cfg.Resolve(config.Flags{})
	cfg.OutputDir = t.TempDir()
	return cfg
}

func generate(t *testing.T, cfg config.Config, characters, poses []string) {
	t.Helper()
	opts := batch.Options{
		Config:     cfg,
		Palettes:   palette.NewRegistry(),
		Archetypes: archetype.NewRegistry(),
	}
	_, results := batch.Generate(opts, characters, poses)
	for _, r := range results {
		if r.Failed() {
			t.Fatalf("generation failed for %s/%s: %v", r.Character, r.Pose, r.Errors)
		}
	}
}

func TestValidateFullBatch(t *testing.T) {
	cfg := testConfig(t)
	characters := []string{"ryu", "ken"}
	poses := []string{"idle", "walk", "attack", "jump"}

	generate(t, cfg, characters, poses)
	rep := Run(cfg, characters, poses)

	if rep.FilesExpected != 16 || rep.FilesFound != 16 {
		t.Errorf("files = %d/%d, want 16/16", rep.FilesFound, rep.FilesExpected)
	}
	if rep.TotalExpected != 8 || rep.Enhanced != 8 {
		t.Errorf("enhanced = %d/%d, want 8/8", rep.Enhanced, rep.TotalExpected)
	}
	if !rep.FullyValid() {
		t.Error("FullyValid() = false for a complete batch")
	}

	for _, cs := range rep.Characters {
		if cs.Enhanced != 4 || cs.Base != 0 || len(cs.Missing) != 0 {
			t.Errorf("%s summary = %+v", cs.Character, cs)
		}
		for _, rec := range cs.Records {
			if rec.Tier != TierEnhanced || !rec.OK() {
				t.Errorf("%s/%s: tier=%s ok=%v", rec.Character, rec.Pose, rec.Tier, rec.OK())
			}
			if rec.Width != cfg.EnhancedWidth || rec.Height != cfg.EnhancedHeight {
				t.Errorf("%s/%s dims = %dx%d", rec.Character, rec.Pose, rec.Width, rec.Height)
			}
		}
	}
}

func TestFallbackPrecedence(t *testing.T) {
	cfg := testConfig(t)
	generate(t, cfg, []string{"ryu"}, []string{"idle"})

	// Both tiers present: enhanced wins.
	rep := Run(cfg, []string{"ryu"}, []string{"idle"})
	rec := rep.Characters[0].Records[0]
	if rec.Tier != TierEnhanced {
		t.Errorf("tier = %s, want enhanced when both exist", rec.Tier)
	}

	// Remove the enhanced file: base is selected, not missing.
	if err := os.Remove(batch.SpritePath(cfg.OutputDir, "ryu", "idle", true, ".png")); err != nil {
		t.Fatal(err)
	}
	rep = Run(cfg, []string{"ryu"}, []string{"idle"})
	rec = rep.Characters[0].Records[0]
	if rec.Tier != TierBase {
		t.Errorf("tier = %s, want base after enhanced removed", rec.Tier)
	}
	if !rec.OK() {
		t.Errorf("base record not OK: %+v", rec)
	}
	if rep.FullyValid() {
		t.Error("FullyValid() = true with a missing enhanced file")
	}

	// Remove the base file too: missing.
	if err := os.Remove(batch.SpritePath(cfg.OutputDir, "ryu", "idle", false, ".png")); err != nil {
		t.Fatal(err)
	}
	rep = Run(cfg, []string{"ryu"}, []string{"idle"})
	rec = rep.Characters[0].Records[0]
	if rec.Tier != TierMissing {
		t.Errorf("tier = %s, want missing", rec.Tier)
	}
	if len(rep.Characters[0].Missing) != 1 {
		t.Errorf("missing list = %v", rep.Characters[0].Missing)
	}
}

func TestDimensionMismatchIsNotMissing(t *testing.T) {
	cfg := testConfig(t)
	generate(t, cfg, []string{"ryu"}, []string{"idle"})

	// Validate against a config expecting different dimensions.
	wrong := cfg
	wrong.Width, wrong.Height = 32, 48
	wrong.EnhancedWidth, wrong.EnhancedHeight = 128, 192

	rep := Run(wrong, []string{"ryu"}, []string{"idle"})
	rec := rep.Characters[0].Records[0]
	if rec.Tier != TierEnhanced {
		t.Errorf("tier = %s, want enhanced (file exists)", rec.Tier)
	}
	if rec.OK() {
		t.Error("record OK despite dimension mismatch")
	}
	if rep.FilesFound != 2 {
		t.Errorf("files found = %d, want 2 (mismatch is not missing)", rep.FilesFound)
	}
	if rep.FullyValid() {
		t.Error("FullyValid() with mismatched dimensions")
	}
}

func TestValidateCanonicalizesPoses(t *testing.T) {
	cfg := testConfig(t)
	generate(t, cfg, []string{"ryu"}, []string{"punch"})

	// punch, kick and special all validate against the attack stem and
	// count once after dedup.
	rep := Run(cfg, []string{"ryu"}, []string{"punch", "kick", "special"})
	if rep.TotalExpected != 1 {
		t.Errorf("expected entries = %d, want 1 after stem dedup", rep.TotalExpected)
	}
	rec := rep.Characters[0].Records[0]
	if rec.Pose != "attack" || rec.Tier != TierEnhanced {
		t.Errorf("record = %+v, want attack/enhanced", rec)
	}
}

func TestValidateWebPBatch(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = "webp"
	generate(t, cfg, []string{"ken"}, []string{"jump"})

	rep := Run(cfg, []string{"ken"}, []string{"jump"})
	if !rep.FullyValid() {
		t.Errorf("webp batch not fully valid: %+v", rep)
	}
	rec := rep.Characters[0].Records[0]
	if rec.Width != cfg.EnhancedWidth || rec.Height != cfg.EnhancedHeight {
		t.Errorf("webp dims = %dx%d", rec.Width, rec.Height)
	}
}

func TestValidateEmptyDirectory(t *testing.T) {
	cfg := testConfig(t)

	rep := Run(cfg, []string{"ryu", "ken"}, []string{"idle", "walk"})
	if rep.FilesFound != 0 || rep.Enhanced != 0 {
		t.Errorf("found = %d enhanced = %d, want 0", rep.FilesFound, rep.Enhanced)
	}
	if rep.FullyValid() {
		t.Error("empty directory reported fully valid")
	}
	for _, cs := range rep.Characters {
		if len(cs.Missing) != 2 {
			t.Errorf("%s missing = %v, want both poses", cs.Character, cs.Missing)
		}
	}
}
