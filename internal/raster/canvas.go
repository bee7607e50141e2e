package raster

import (
	"image"
	"image/color"
)

// Canvas is an NRGBA pixel buffer with hard-edged drawing primitives.
// Coordinates are inclusive on both ends, outlines are one pixel wide,
// and nothing is anti-aliased. Pixels outside the canvas are silently
// clipped.
type Canvas struct {
	Img *image.NRGBA
}

// NewCanvas allocates a fully transparent canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (c *Canvas) set(x, y int, col color.NRGBA) {
	b := c.Img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := c.Img.PixOffset(x, y)
	c.Img.Pix[i] = col.R
	c.Img.Pix[i+1] = col.G
	c.Img.Pix[i+2] = col.B
	c.Img.Pix[i+3] = col.A
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// FillRect fills the inclusive rectangle and draws a one-pixel outline
// over its border.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, fill, outline color.NRGBA) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x == x0 || x == x1 || y == y0 || y == y1 {
				c.set(x, y, outline)
			} else {
				c.set(x, y, fill)
			}
		}
	}
}

// inEllipse reports whether the center of pixel (x, y) lies inside the
// ellipse inscribed in the inclusive bounding box.
func inEllipse(x, y, x0, y0, x1, y1 int) bool {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx < 0.5 {
		rx = 0.5
	}
	if ry < 0.5 {
		ry = 0.5
	}
	dx := (float64(x) - cx) / rx
	dy := (float64(y) - cy) / ry
	return dx*dx+dy*dy <= 1.0
}

// FillEllipse fills the ellipse inscribed in the inclusive bounding box
// and draws its one-pixel boundary with the outline color.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 int, fill, outline color.NRGBA) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inEllipse(x, y, x0, y0, x1, y1) {
				continue
			}
			if onEllipseEdge(x, y, x0, y0, x1, y1) {
				c.set(x, y, outline)
			} else {
				c.set(x, y, fill)
			}
		}
	}
}

// StrokeEllipse draws only the one-pixel boundary of the ellipse.
func (c *Canvas) StrokeEllipse(x0, y0, x1, y1 int, outline color.NRGBA) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inEllipse(x, y, x0, y0, x1, y1) && onEllipseEdge(x, y, x0, y0, x1, y1) {
				c.set(x, y, outline)
			}
		}
	}
}

// onEllipseEdge reports whether an inside pixel touches the outside via
// a 4-neighbor, i.e. sits on the rasterized boundary.
func onEllipseEdge(x, y, x0, y0, x1, y1 int) bool {
	return !inEllipse(x-1, y, x0, y0, x1, y1) ||
		!inEllipse(x+1, y, x0, y0, x1, y1) ||
		!inEllipse(x, y-1, x0, y0, x1, y1) ||
		!inEllipse(x, y+1, x0, y0, x1, y1)
}
