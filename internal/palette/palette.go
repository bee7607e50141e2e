package palette

import "image/color"

// Part names a colorable region of the figure.
type Part string

const (
	Skin             Part = "skin"
	Hair             Part = "hair"
	PrimaryGarment   Part = "primaryGarment"
	SecondaryGarment Part = "secondaryGarment"
	Belt             Part = "belt"
	Eyes             Part = "eyes"
	Outline          Part = "outline"
)

// Ramp is an ordered shade sequence: base, shadow, optional highlight.
type Ramp []color.NRGBA

// Base returns the primary shade. Empty ramps yield opaque black so a
// missing entry still draws something visible.
func (r Ramp) Base() color.NRGBA {
	if len(r) == 0 {
		return color.NRGBA{A: 255}
	}
	return r[0]
}

// Shadow returns the second shade, falling back to the base shade.
func (r Ramp) Shadow() color.NRGBA {
	if len(r) > 1 {
		return r[1]
	}
	return r.Base()
}

// Palette maps body parts to color ramps.
type Palette map[Part]Ramp

// Ramp returns the ramp for a part, degrading to the default palette's
// ramp when the part is missing. Never returns an empty ramp for parts
// the rasterizer references.
func (p Palette) Ramp(part Part) Ramp {
	if r, ok := p[part]; ok && len(r) > 0 {
		return r
	}
	return defaultPalette[part]
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

var defaultPalette = Palette{
	Skin:             {rgb(255, 220, 177), rgb(235, 200, 157), rgb(215, 180, 137)},
	Hair:             {rgb(139, 69, 19), rgb(160, 82, 45), rgb(101, 67, 33)},
	PrimaryGarment:   {rgb(255, 255, 255), rgb(240, 240, 240), rgb(220, 220, 220)},
	SecondaryGarment: {rgb(220, 20, 60), rgb(200, 20, 40), rgb(180, 20, 20)},
	Belt:             {rgb(139, 69, 19), rgb(101, 67, 33), rgb(83, 53, 19)},
	Eyes:             {rgb(0, 100, 200), rgb(0, 80, 180), rgb(0, 60, 160)},
	Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
}

// Registry holds the shipped palettes. Built once at start, read-only
// afterwards, safe for concurrent use.
type Registry struct {
	palettes map[string]Palette
}

// NewRegistry returns a registry preloaded with the shipped character
// palettes plus the generic default.
func NewRegistry() *Registry {
	return &Registry{palettes: map[string]Palette{
		"default": defaultPalette,
		"ryu": {
			Skin:             {rgb(255, 220, 177), rgb(235, 200, 157), rgb(215, 180, 137)},
			Hair:             {rgb(139, 69, 19), rgb(160, 82, 45), rgb(101, 67, 33)},
			PrimaryGarment:   {rgb(255, 255, 255), rgb(240, 240, 240), rgb(220, 220, 220)},
			SecondaryGarment: {rgb(255, 255, 255), rgb(240, 240, 240), rgb(220, 220, 220)},
			Belt:             {rgb(0, 0, 0), rgb(32, 32, 32), rgb(16, 16, 16)},
			Eyes:             {rgb(101, 67, 33), rgb(83, 53, 19), rgb(65, 39, 15)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
		"ken": {
			Skin:             {rgb(255, 220, 177), rgb(235, 200, 157), rgb(215, 180, 137)},
			Hair:             {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			PrimaryGarment:   {rgb(255, 0, 0), rgb(220, 0, 0), rgb(180, 0, 0)},
			SecondaryGarment: {rgb(255, 255, 255), rgb(240, 240, 240), rgb(220, 220, 220)},
			Belt:             {rgb(139, 69, 19), rgb(101, 67, 33), rgb(83, 53, 19)},
			Eyes:             {rgb(0, 100, 200), rgb(0, 80, 180), rgb(0, 60, 160)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
		"chun_li": {
			Skin:             {rgb(255, 228, 196), rgb(245, 218, 186), rgb(225, 198, 166)},
			Hair:             {rgb(139, 69, 19), rgb(101, 67, 33), rgb(83, 53, 19)},
			PrimaryGarment:   {rgb(30, 144, 255), rgb(0, 123, 255), rgb(0, 100, 200)},
			SecondaryGarment: {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Belt:             {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Eyes:             {rgb(101, 67, 33), rgb(83, 53, 19), rgb(65, 39, 15)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
		"zangief": {
			Skin:             {rgb(255, 220, 177), rgb(235, 200, 157), rgb(215, 180, 137)},
			Hair:             {rgb(205, 92, 92), rgb(178, 34, 34), rgb(139, 0, 0)},
			PrimaryGarment:   {rgb(255, 0, 0), rgb(220, 0, 0), rgb(180, 0, 0)},
			SecondaryGarment: {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Belt:             {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Eyes:             {rgb(0, 100, 200), rgb(0, 80, 180), rgb(0, 60, 160)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
		"sagat": {
			Skin:             {rgb(210, 180, 140), rgb(190, 160, 120), rgb(170, 140, 100)},
			Hair:             {rgb(0, 0, 0), rgb(32, 32, 32), rgb(16, 16, 16)},
			PrimaryGarment:   {rgb(128, 0, 128), rgb(106, 0, 106), rgb(84, 0, 84)},
			SecondaryGarment: {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Belt:             {rgb(255, 215, 0), rgb(255, 193, 37), rgb(255, 165, 0)},
			Eyes:             {rgb(255, 0, 0), rgb(220, 0, 0), rgb(180, 0, 0)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
		"lei_wulong": {
			Skin:             {rgb(255, 228, 196), rgb(245, 218, 186), rgb(225, 198, 166)},
			Hair:             {rgb(0, 0, 0), rgb(32, 32, 32), rgb(16, 16, 16)},
			PrimaryGarment:   {rgb(255, 255, 255), rgb(240, 240, 240), rgb(220, 220, 220)},
			SecondaryGarment: {rgb(0, 0, 0), rgb(32, 32, 32), rgb(16, 16, 16)},
			Belt:             {rgb(139, 69, 19), rgb(101, 67, 33), rgb(83, 53, 19)},
			Eyes:             {rgb(101, 67, 33), rgb(83, 53, 19), rgb(65, 39, 15)},
			Outline:          {rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64)},
		},
	}}
}

// Resolve returns the palette for a name. Unknown names fall back to the
// default palette; Resolve never fails.
func (rg *Registry) Resolve(name string) Palette {
	if p, ok := rg.palettes[name]; ok {
		return p
	}
	return rg.palettes["default"]
}

// Has reports whether a palette with this exact name is registered.
// The batch orchestrator uses it to give character-specific palettes
// precedence over the configured one.
func (rg *Registry) Has(name string) bool {
	_, ok := rg.palettes[name]
	return ok
}

// Names returns the registered palette names.
func (rg *Registry) Names() []string {
	names := make([]string, 0, len(rg.palettes))
	for n := range rg.palettes {
		names = append(names, n)
	}
	return names
}
