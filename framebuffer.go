package dmg

import (
	"image"
	"image/color"
)

// Framebuffer converts the PPU's packed RGBA pixel buffer into a standard
// image.RGBA, following the teacher's golang.org/x/image pixel-format
// plumbing pattern but built entirely on the standard library's image
// package, which already supplies everything a 160x144 RGBA conversion
// needs.
func (s *State) Framebuffer() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 160, 144))
	for y := 0; y < 144; y++ {
		for x := 0; x < 160; x++ {
			px := s.PPU.LCD[y*160+x]
			img.SetRGBA(x, y, color.RGBA{
				R: byte(px >> 24),
				G: byte(px >> 16),
				B: byte(px >> 8),
				A: byte(px),
			})
		}
	}
	return img
}
