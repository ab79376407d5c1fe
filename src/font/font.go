// Package font stamps text into a universe using a bitmap font.
// Every lit pixel of a glyph becomes a small five cell sprite, so the message
// falls apart into moving patterns once the simulation starts.
package font

import (
	"image/color"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lifetext/src/universe"
)

const (
	margin = 3 //offset of the first glyph from the top left corner
	pitch  = 5 //cells per glyph pixel
)

const DefaultMessage = universe.DefMessage

var face = basicfont.Face7x13

//StampLetter writes the glyph of r into the universe at the glyph slot
//returns false if the font has no glyph for r
func StampLetter(u *universe.Universe, slot int, r rune) bool {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, face.Ascent), r)
	if !ok {
		return false
	}
	tail := 2 * (slot % 2)
	for x := 0; x < dr.Dx(); x++ {
		for y := 0; y < dr.Dy(); y++ {
			if color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha).A == 0 {
				continue
			}
			col := margin + pitch*(face.Advance*slot+x)
			row := margin + pitch*y
			u.Set(row, col, universe.Alive)
			u.Set(row, col-1, universe.Alive)
			u.Set(row, col-2, universe.Alive)
			u.Set(row-1, col-tail, universe.Alive)
			u.Set(row-2, col-1, universe.Alive)
		}
	}
	return true
}

//Letter returns the seeder stamping one letter at the glyph slot
func Letter(slot int, r rune) universe.Seeder {
	return func(u *universe.Universe) {
		StampLetter(u, slot, r)
	}
}

//Message returns the seeder stamping s, one glyph slot per rune
func Message(s string) universe.Seeder {
	return func(u *universe.Universe) {
		slot := 0
		for _, r := range s {
			StampLetter(u, slot, r)
			slot++
		}
	}
}
