// Package postprocess transforms finished sprite images: retro color
// quantization with error-diffusion dithering, and contact-sheet
// assembly for previews.
package postprocess

import (
	"image"
	"sort"
)

// DitherColors is the palette size sprites are quantized to.
const DitherColors = 16

// Dither quantizes an image to a small palette with Floyd–Steinberg
// error diffusion, then restores the original alpha channel. The input
// is not modified.
func Dither(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	pal := buildPalette(img, DitherColors)
	if len(pal) == 0 {
		copy(out.Pix, img.Pix)
		return out
	}

	// Working buffer in float space so diffused error can go negative.
	buf := make([]float64, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := (y*w + x) * 3
			buf[di] = float64(img.Pix[si])
			buf[di+1] = float64(img.Pix[si+1])
			buf[di+2] = float64(img.Pix[si+2])
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			r, g, bl := buf[i], buf[i+1], buf[i+2]
			pr, pg, pb := nearest(pal, r, g, bl)

			di := out.PixOffset(x, y)
			out.Pix[di] = pr
			out.Pix[di+1] = pg
			out.Pix[di+2] = pb

			er := r - float64(pr)
			eg := g - float64(pg)
			eb := bl - float64(pb)
			diffuse(buf, w, h, x+1, y, er, eg, eb, 7.0/16)
			diffuse(buf, w, h, x-1, y+1, er, eg, eb, 3.0/16)
			diffuse(buf, w, h, x, y+1, er, eg, eb, 5.0/16)
			diffuse(buf, w, h, x+1, y+1, er, eg, eb, 1.0/16)
		}
	}

	// Restore alpha untouched.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[out.PixOffset(x, y)+3] = img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}

	return out
}

func diffuse(buf []float64, w, h, x, y int, er, eg, eb, weight float64) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	i := (y*w + x) * 3
	buf[i] += er * weight
	buf[i+1] += eg * weight
	buf[i+2] += eb * weight
}

func nearest(pal [][3]uint8, r, g, b float64) (uint8, uint8, uint8) {
	best := 0
	bestDist := 1e18
	for i, p := range pal {
		dr := r - float64(p[0])
		dg := g - float64(p[1])
		db := b - float64(p[2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	p := pal[best]
	return p[0], p[1], p[2]
}

// buildPalette derives up to n representative colors from the visible
// pixels by median cut. Fewer unique colors than n are returned as-is.
func buildPalette(img *image.NRGBA, n int) [][3]uint8 {
	b := img.Bounds()
	counts := make(map[[3]uint8]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i+3] == 0 {
				continue
			}
			counts[[3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}]++
		}
	}

	colors := make([][3]uint8, 0, len(counts))
	weights := make([]int, 0, len(counts))
	for c, w := range counts {
		colors = append(colors, c)
		weights = append(weights, w)
	}
	if len(colors) <= n {
		return colors
	}

	type box struct{ idx []int }
	boxes := []box{{idx: seq(len(colors))}}

	for len(boxes) < n {
		// Split the box with the widest channel range.
		bestBox, bestChan, bestRange := -1, 0, -1
		for bi, bx := range boxes {
			if len(bx.idx) < 2 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				lo, hi := 255, 0
				for _, ci := range bx.idx {
					v := int(colors[ci][ch])
					if v < lo {
						lo = v
					}
					if v > hi {
						hi = v
					}
				}
				if hi-lo > bestRange {
					bestRange = hi - lo
					bestBox = bi
					bestChan = ch
				}
			}
		}
		if bestBox < 0 || bestRange == 0 {
			break
		}

		bx := boxes[bestBox]
		ch := bestChan
		sort.Slice(bx.idx, func(a, b int) bool {
			return colors[bx.idx[a]][ch] < colors[bx.idx[b]][ch]
		})
		mid := len(bx.idx) / 2
		boxes[bestBox] = box{idx: bx.idx[:mid]}
		boxes = append(boxes, box{idx: bx.idx[mid:]})
	}

	pal := make([][3]uint8, 0, len(boxes))
	for _, bx := range boxes {
		var sr, sg, sb, sw int
		for _, ci := range bx.idx {
			w := weights[ci]
			sr += int(colors[ci][0]) * w
			sg += int(colors[ci][1]) * w
			sb += int(colors[ci][2]) * w
			sw += w
		}
		if sw == 0 {
			continue
		}
		pal = append(pal, [3]uint8{
			uint8((sr + sw/2) / sw),
			uint8((sg + sw/2) / sw),
			uint8((sb + sw/2) / sw),
		})
	}
	return pal
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
