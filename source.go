package halfblock

import (
	"image"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/lucasb-eyer/go-colorful"
)

// PixelSource is a read-only grid of pixels that can be rendered. Coordinates
// passed to Alpha and Color are always within [0, Width) x [0, Height).
type PixelSource interface {
	Width() int
	Height() int

	// Alpha returns the alpha channel of the pixel, 255 being fully opaque.
	Alpha(x, y int) uint8

	// Color returns the color of the pixel, or false if the source does not
	// carry color information.
	Color(x, y int) (colorful.Color, bool)
}

// GrayAlphaSource is a two channel (luma, alpha) pixel source. It never
// reports a color.
type GrayAlphaSource struct {
	width  int
	height int
	pix    []uint8
}

// NewGrayAlphaSource converts the image into a grayscale source.
func NewGrayAlphaSource(img image.Image) *GrayAlphaSource {
	g := gift.New(gift.Grayscale())
	g.SetParallelization(true)

	nrgba := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(nrgba, img)

	src := &GrayAlphaSource{
		width:  nrgba.Rect.Dx(),
		height: nrgba.Rect.Dy(),
	}
	src.pix = make([]uint8, src.width*src.height*2)

	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			i := nrgba.PixOffset(nrgba.Rect.Min.X+x, nrgba.Rect.Min.Y+y)
			j := (y*src.width + x) * 2
			src.pix[j] = nrgba.Pix[i]
			src.pix[j+1] = nrgba.Pix[i+3]
		}
	}

	return src
}

// Width returns the width of the source in pixels.
func (s *GrayAlphaSource) Width() int { return s.width }

// Height returns the height of the source in pixels.
func (s *GrayAlphaSource) Height() int { return s.height }

// Luma returns the gray level of the pixel. It is informational only;
// rendering reads nothing but the alpha channel.
func (s *GrayAlphaSource) Luma(x, y int) uint8 {
	return s.pix[(y*s.width+x)*2]
}

// Alpha returns the alpha channel of the pixel.
func (s *GrayAlphaSource) Alpha(x, y int) uint8 {
	return s.pix[(y*s.width+x)*2+1]
}

// Color always returns false.
func (s *GrayAlphaSource) Color(x, y int) (colorful.Color, bool) {
	return colorful.Color{}, false
}

// RGBASource is a non-premultiplied four channel pixel source.
type RGBASource struct {
	img *image.NRGBA
}

// NewRGBASource converts the image into a color source. NRGBA images are used
// as is, and YCbCr images (JPEG) are converted with the standard library's
// color model so colors match what the decoder reports.
func NewRGBASource(img image.Image) *RGBASource {
	switch img := img.(type) {
	case *image.NRGBA:
		return &RGBASource{img: img}
	case *image.YCbCr:
		nrgba := image.NewNRGBA(img.Bounds())
		draw.Draw(nrgba, nrgba.Rect, img, img.Rect.Min, draw.Src)
		return &RGBASource{img: nrgba}
	}

	g := gift.New()
	g.SetParallelization(true)

	nrgba := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(nrgba, img)

	return &RGBASource{img: nrgba}
}

// Width returns the width of the source in pixels.
func (s *RGBASource) Width() int { return s.img.Rect.Dx() }

// Height returns the height of the source in pixels.
func (s *RGBASource) Height() int { return s.img.Rect.Dy() }

func (s *RGBASource) offset(x, y int) int {
	return s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
}

// Alpha returns the alpha channel of the pixel.
func (s *RGBASource) Alpha(x, y int) uint8 {
	return s.img.Pix[s.offset(x, y)+3]
}

// Color returns the color of the pixel.
func (s *RGBASource) Color(x, y int) (colorful.Color, bool) {
	p := s.img.Pix[s.offset(x, y):]
	return colorful.Color{
		R: float64(p[0]) / 255.0,
		G: float64(p[1]) / 255.0,
		B: float64(p[2]) / 255.0,
	}, true
}

// NewSource returns a color source if color is true, otherwise a grayscale
// source.
func NewSource(img image.Image, color bool) PixelSource {
	if color {
		return NewRGBASource(img)
	}

	return NewGrayAlphaSource(img)
}
