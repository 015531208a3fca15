// Package render builds the wallpaper raster: a wrapped caption band above
// the source meme, a spacer strip below it, and a letterboxed fit to the
// screen.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// CaptionMargin is the pixel inset of the caption text inside its band and
// the padding added above and below the text block.
const CaptionMargin = 20

// heuristicCharWidth is the assumed pixel width of one caption character.
// The wrap column budget is (imageWidth - 2*margin) / heuristicCharWidth;
// downstream output depends on this exact heuristic, so it is not replaced
// by pixel-accurate measurement.
const heuristicCharWidth = 20

// Compositor draws caption bands above meme images.
type Compositor struct {
	face        font.Face
	margin      int
	stripHeight int
}

// NewCompositor creates a Compositor rendering captions with face and
// appending a black strip of stripHeight pixels below the image.
func NewCompositor(face font.Face, stripHeight int) *Compositor {
	return &Compositor{face: face, margin: CaptionMargin, stripHeight: stripHeight}
}

// Compose returns a new image: title wrapped and rendered in white at the
// top, the source pasted directly below the caption band, and the spacer
// strip at the bottom. The result is exactly bandHeight+stripHeight taller
// than the source and never narrower.
func (c *Compositor) Compose(img image.Image, title string) *image.NRGBA {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	lines := wrapText(title, wrapColumns(width, c.margin))
	bandHeight := c.textHeight(lines) + 2*c.margin

	canvas := imaging.New(width, height+bandHeight+c.stripHeight, color.Black)
	canvas = imaging.Paste(canvas, img, image.Pt(0, bandHeight))
	c.drawLines(canvas, lines)
	return canvas
}

// BandHeight returns the caption band height Compose will use for an image
// of the given width.
func (c *Compositor) BandHeight(imageWidth int, title string) int {
	lines := wrapText(title, wrapColumns(imageWidth, c.margin))
	return c.textHeight(lines) + 2*c.margin
}

// wrapColumns converts an image width to the per-line character budget.
func wrapColumns(imageWidth, margin int) int {
	return (imageWidth - 2*margin) / heuristicCharWidth
}

// wrapText greedily fills words into lines of at most width characters.
// Words longer than a whole line are chopped at the budget so no line ever
// exceeds it.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var line []rune
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(line) > 0 && len(line)+1+len(runes) > width {
			flush()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, runes...)
	}
	flush()
	return lines
}

// textHeight returns the rendered height of the wrapped caption block.
func (c *Compositor) textHeight(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	return len(lines) * c.face.Metrics().Height.Ceil()
}

// drawLines renders the caption lines in white, top-aligned at the margin.
func (c *Compositor) drawLines(dst draw.Image, lines []string) {
	metrics := c.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	for i, line := range lines {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: c.face,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(c.margin * 64),
				Y: fixed.Int26_6((c.margin + ascent + i*lineHeight) * 64),
			},
		}
		d.DrawString(line)
	}
}
