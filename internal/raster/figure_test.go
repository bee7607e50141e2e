package raster

import (
	"bytes"
	"image"
	"testing"

	"fighter-spritegen/internal/archetype"
	"fighter-spritegen/internal/palette"
)

func testPalette() palette.Palette {
	return palette.NewRegistry().Resolve("default")
}

func testArchetype(name string) archetype.Archetype {
	return archetype.NewRegistry().Resolve(name)
}

func opaqueBounds(img *image.NRGBA) (minX, minY, maxX, maxY int, any bool) {
	b := img.Bounds()
	minX, minY = b.Max.X, b.Max.Y
	maxX, maxY = -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
				any = true
			}
		}
	}
	return
}

func TestRenderFigureCanvasSize(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("balanced")

	base := RenderFigure(pal, arch, "idle", 64, 96, 1)
	if base.Bounds().Dx() != 64 || base.Bounds().Dy() != 96 {
		t.Errorf("base canvas = %v, want 64x96", base.Bounds())
	}

	enhanced := RenderFigure(pal, arch, "idle", 256, 384, 4)
	if enhanced.Bounds().Dx() != 256 || enhanced.Bounds().Dy() != 384 {
		t.Errorf("enhanced canvas = %v, want 256x384", enhanced.Bounds())
	}
}

func TestRenderFigureDeterministic(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("grappler")

	a := RenderFigure(pal, arch, "special", 64, 96, 1)
	b := RenderFigure(pal, arch, "special", 64, 96, 1)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same inputs differ")
	}
}

func TestRenderFigureDrawsSomethingInsideMargins(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("balanced")

	img := RenderFigure(pal, arch, "idle", 64, 96, 1)
	minX, _, maxX, maxY, any := opaqueBounds(img)
	if !any {
		t.Fatal("render produced a fully transparent canvas")
	}
	if maxY > 96-5 {
		t.Errorf("figure extends below the bottom margin: maxY = %d", maxY)
	}
	if minX <= 0 || maxX >= 63 {
		t.Errorf("idle figure touches canvas sides: x range [%d, %d]", minX, maxX)
	}

	// Corners stay fully transparent.
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 95}, {63, 95}} {
		if img.Pix[img.PixOffset(p[0], p[1])+3] != 0 {
			t.Errorf("corner (%d,%d) not transparent", p[0], p[1])
		}
	}
}

func TestUnknownPoseMatchesDefaultGeometry(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("balanced")

	// Names outside the vocabulary (including the stored stem "attack")
	// render with zero lean and default limbs, identical to idle.
	idle := RenderFigure(pal, arch, "idle", 64, 96, 1)
	for _, name := range []string{"attack", "krouch", ""} {
		got := RenderFigure(pal, arch, name, 64, 96, 1)
		if !bytes.Equal(idle.Pix, got.Pix) {
			t.Errorf("pose %q differs from default geometry", name)
		}
	}
}

func TestPosesChangeGeometry(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("balanced")

	idle := RenderFigure(pal, arch, "idle", 64, 96, 1)
	for _, name := range []string{"walk", "punch", "kick", "jump", "special"} {
		got := RenderFigure(pal, arch, name, 64, 96, 1)
		if bytes.Equal(idle.Pix, got.Pix) {
			t.Errorf("pose %q renders identically to idle", name)
		}
	}
}

func TestLeanShiftsWholeFigure(t *testing.T) {
	pal := testPalette()
	arch := testArchetype("balanced")

	idle := RenderFigure(pal, arch, "idle", 64, 96, 1)
	punch := RenderFigure(pal, arch, "punch", 64, 96, 1)

	_, _, idleMax, _, _ := opaqueBounds(idle)
	_, _, punchMax, _, _ := opaqueBounds(punch)
	if punchMax <= idleMax {
		t.Errorf("punch rightmost pixel %d not beyond idle %d (lean + extended arm)", punchMax, idleMax)
	}
}

func TestHeavyBodyIsWider(t *testing.T) {
	pal := testPalette()

	lean := RenderFigure(pal, testArchetype("rushdown"), "idle", 64, 96, 1)
	heavy := RenderFigure(pal, testArchetype("grappler"), "idle", 64, 96, 1)

	leanMin, _, leanMax, _, _ := opaqueBounds(lean)
	heavyMin, _, heavyMax, _, _ := opaqueBounds(heavy)
	if heavyMax-heavyMin <= leanMax-leanMin {
		t.Errorf("heavy figure width %d not wider than lean %d",
			heavyMax-heavyMin, leanMax-leanMin)
	}
}
