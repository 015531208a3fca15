package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitToScreen scales img to fill as much of the target resolution as the
// aspect ratio allows and centers it on a black canvas of exactly
// (targetWidth, targetHeight). The image is never cropped; the remainder is
// uniform letterbox or pillarbox bars.
func FitToScreen(img image.Image, targetWidth, targetHeight int) *image.NRGBA {
	originalRatio := float64(img.Bounds().Dx()) / float64(img.Bounds().Dy())
	targetRatio := float64(targetWidth) / float64(targetHeight)

	var newWidth, newHeight int
	if targetRatio > originalRatio {
		// Screen is wider than the image: fit to height.
		newHeight = targetHeight
		newWidth = int(math.Round(float64(targetHeight) * originalRatio))
	} else {
		// Screen is taller than the image: fit to width.
		newWidth = targetWidth
		newHeight = int(math.Round(float64(targetWidth) / originalRatio))
	}

	resized := imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)

	canvas := imaging.New(targetWidth, targetHeight, color.Black)
	offset := image.Pt((targetWidth-newWidth)/2, (targetHeight-newHeight)/2)
	return imaging.Paste(canvas, resized, offset)
}
