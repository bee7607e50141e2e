package raster

import (
	"image"

	"fighter-spritegen/internal/archetype"
	"fighter-spritegen/internal/palette"
	"fighter-spritegen/internal/pose"
)

// RenderFigure draws one character sprite onto a fresh transparent
// canvas. Body parts are composed back-to-front: legs, torso, head,
// then arms. The canvas stays fully transparent outside drawn shapes,
// and there is no failure path — missing palette or archetype entries
// degrade to defaults.
//
// scale is 1 for the base tier and the resolution multiplier for the
// enhanced tier, so every dimension below is redrawn at native
// resolution rather than interpolated.
func RenderFigure(pal palette.Palette, arch archetype.Archetype, poseName string, width, height, scale int) *image.NRGBA {
	c := NewCanvas(width, height)

	centerX := width / 2
	headH := int(float64(height) * arch.Proportions.Head)
	torsoH := int(float64(height) * arch.Proportions.Torso)
	legsH := int(float64(height) * arch.Proportions.Legs)

	lean := pose.Lean(poseName, scale)
	cx := centerX + lean

	// Bottom margin, then stack parts upward.
	currentY := height - 5*scale

	legW := 6 * scale
	if arch.BodyType == archetype.Heavy {
		legW = 8 * scale
	}
	drawLegs(c, pal, cx, currentY, legW, legsH, pose.LegStyle(poseName))
	currentY -= legsH

	torsoW := 10 * scale
	if arch.BodyType == archetype.Heavy {
		torsoW = 12 * scale
	}
	drawTorso(c, pal, arch, cx, currentY, torsoW, torsoH, scale)
	currentY -= torsoH

	headW := 8 * scale
	drawHead(c, pal, cx, currentY, headW, headH, scale)

	drawArms(c, pal, cx, currentY+headH/2, pose.ArmStyle(poseName), scale, torsoW, torsoH)

	return c.Img
}

func drawLegs(c *Canvas, pal palette.Palette, cx, bottomY, w, h int, style pose.LegStance) {
	legCol := pal.Ramp(palette.PrimaryGarment).Base()
	outCol := pal.Ramp(palette.Outline).Base()

	switch style {
	case pose.LegsExtendedKick:
		// Standing leg plus one extended leg.
		c.FillRect(cx-w/4, bottomY-h, cx, bottomY, legCol, outCol)
		c.FillRect(cx, bottomY-h/2, cx+w/2, bottomY-h/3, legCol, outCol)
	case pose.LegsBentJump:
		legH := h * 2 / 3
		c.FillRect(cx-w/2, bottomY-legH, cx-w/4, bottomY, legCol, outCol)
		c.FillRect(cx+w/4, bottomY-legH, cx+w/2, bottomY, legCol, outCol)
	default:
		c.FillRect(cx-w/2, bottomY-h, cx-w/8, bottomY, legCol, outCol)
		c.FillRect(cx+w/8, bottomY-h, cx+w/2, bottomY, legCol, outCol)
	}
}

func drawTorso(c *Canvas, pal palette.Palette, arch archetype.Archetype, cx, bottomY, w, h, scale int) {
	torsoRamp := pal.Ramp(palette.PrimaryGarment)
	outCol := pal.Ramp(palette.Outline).Base()

	topY := bottomY - h
	c.FillRect(cx-w/2, topY, cx+w/2, bottomY, torsoRamp.Base(), outCol)

	// Secondary garment trim across the shoulders, layered over the fill.
	trim := pal.Ramp(palette.SecondaryGarment).Base()
	c.FillRect(cx-w/2, topY, cx+w/2, topY+2*scale, trim, outCol)

	beltY := bottomY - h/4
	c.FillRect(cx-w/2, beltY-2*scale, cx+w/2, beltY+2*scale,
		pal.Ramp(palette.Belt).Base(), outCol)

	if arch.Muscle == archetype.MuscleHigh {
		chestCol := outCol
		if len(torsoRamp) > 1 {
			chestCol = torsoRamp[1]
		}
		chestY := bottomY - h*3/4
		c.StrokeEllipse(cx-w/3, chestY-4*scale, cx+w/3, chestY+4*scale, chestCol)
	}
}

func drawHead(c *Canvas, pal palette.Palette, cx, bottomY, w, h, scale int) {
	skinCol := pal.Ramp(palette.Skin).Base()
	hairCol := pal.Ramp(palette.Hair).Base()
	eyeCol := pal.Ramp(palette.Eyes).Base()
	outCol := pal.Ramp(palette.Outline).Base()

	c.FillEllipse(cx-w/2, bottomY-h, cx+w/2, bottomY, skinCol, outCol)

	hairH := h / 3
	c.FillEllipse(cx-w/2, bottomY-h, cx+w/2, bottomY-h+hairH, hairCol, outCol)

	eyeY := bottomY - h*2/3
	eyeSize := 2 * scale
	c.FillEllipse(cx-w/4-eyeSize/2, eyeY-eyeSize/2, cx-w/4+eyeSize/2, eyeY+eyeSize/2, eyeCol, eyeCol)
	c.FillEllipse(cx+w/4-eyeSize/2, eyeY-eyeSize/2, cx+w/4+eyeSize/2, eyeY+eyeSize/2, eyeCol, eyeCol)
}

func drawArms(c *Canvas, pal palette.Palette, cx, cy int, style pose.ArmStance, scale, torsoW, torsoH int) {
	armCol := pal.Ramp(palette.PrimaryGarment).Base()
	skinCol := pal.Ramp(palette.Skin).Base()
	outCol := pal.Ramp(palette.Outline).Base()

	armW := 4 * scale
	armLen := torsoH / 2

	switch style {
	case pose.ArmsExtendedStrike:
		// Lead arm extended with a fist at the tip, rear arm retracted.
		c.FillRect(cx+torsoW/2, cy-armW/2, cx+torsoW/2+armLen, cy+armW/2, armCol, outCol)
		c.FillEllipse(cx+torsoW/2+armLen-3*scale, cy-3*scale,
			cx+torsoW/2+armLen+3*scale, cy+3*scale, skinCol, outCol)
		c.FillRect(cx-torsoW/2-armLen/2, cy-armW/2, cx-torsoW/2, cy+armW/2, armCol, outCol)
	case pose.ArmsDramatic:
		// One arm raised, one thrust forward and down.
		c.FillRect(cx-torsoW/2-armW/2, cy-armLen, cx-torsoW/2+armW/2, cy, armCol, outCol)
		c.FillRect(cx+torsoW/2, cy, cx+torsoW/2+armLen/2, cy+armLen/2, armCol, outCol)
	default:
		c.FillRect(cx-torsoW/2-armW, cy-armW/2, cx-torsoW/2, cy+armLen, armCol, outCol)
		c.FillRect(cx+torsoW/2, cy-armW/2, cx+torsoW/2+armW, cy+armLen, armCol, outCol)
	}
}
