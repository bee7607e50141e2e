package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// SheetPadding is the gap in pixels between contact-sheet tiles,
// applied before upscaling.
const SheetPadding = 2

// BuildSheet composes sprites into a grid, upscaled with nearest-
// neighbor sampling so pixel edges stay crisp. Tiles may differ in
// size; each cell is sized to the largest tile. Nil tiles leave an
// empty cell.
func BuildSheet(tiles []*image.NRGBA, columns, upscale int) *image.NRGBA {
	if columns < 1 {
		columns = 1
	}
	if upscale < 1 {
		upscale = 1
	}
	if len(tiles) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	cellW, cellH := 0, 0
	for _, t := range tiles {
		if t == nil {
			continue
		}
		if w := t.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := t.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}
	if cellW == 0 || cellH == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	rows := (len(tiles) + columns - 1) / columns
	gridW := columns*(cellW+SheetPadding) + SheetPadding
	gridH := rows*(cellH+SheetPadding) + SheetPadding

	grid := image.NewNRGBA(image.Rect(0, 0, gridW, gridH))
	for i, t := range tiles {
		if t == nil {
			continue
		}
		col := i % columns
		row := i / columns
		x0 := SheetPadding + col*(cellW+SheetPadding)
		y0 := SheetPadding + row*(cellH+SheetPadding)
		// Bottom-align within the cell so figures share a floor line.
		y0 += cellH - t.Bounds().Dy()
		r := image.Rect(x0, y0, x0+t.Bounds().Dx(), y0+t.Bounds().Dy())
		draw.Draw(grid, r, t, t.Bounds().Min, draw.Src)
	}

	if upscale == 1 {
		return grid
	}

	out := image.NewNRGBA(image.Rect(0, 0, gridW*upscale, gridH*upscale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), grid, grid.Bounds(), draw.Src, nil)
	return out
}
