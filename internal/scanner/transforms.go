package scanner

import (
	"image"
	"image/color"
)

// Adaptive threshold constants: neighborhood edge length and the bias
// subtracted from the local mean. Fixed on purpose; tuning them per frame
// would break the pipeline's statelessness.
const (
	thresholdWindow = 25
	thresholdBias   = 7
)

// Transform is one image preprocessing step of the fallback pipeline. Every
// Apply is pure: it allocates its own output and never touches the input.
type Transform struct {
	Name  string
	Apply func(image.Image) image.Image
}

func identity(img image.Image) image.Image { return img }

// toGray converts any raster to 8-bit grayscale.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return out
}

func grayscale(img image.Image) image.Image {
	return toGray(img)
}

// equalize applies histogram equalization to a grayscale copy, stretching
// low-contrast frames (glare, dim lighting) across the full dynamic range.
func equalize(img image.Image) image.Image {
	g := toGray(img)
	b := g.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return g
	}

	var hist [256]int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[g.GrayAt(x, y).Y]++
		}
	}

	// Map through the cumulative distribution, anchored at the first
	// occupied bin so the darkest pixel stays black.
	var lut [256]uint8
	cdfMin := 0
	for _, n := range hist {
		if n > 0 {
			cdfMin = n
			break
		}
	}
	denom := total - cdfMin
	if denom <= 0 {
		return g
	}
	cdf := 0
	for i := 0; i < 256; i++ {
		cdf += hist[i]
		v := (cdf - cdfMin) * 255 / denom
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
	}

	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x, y, color.Gray{Y: lut[g.GrayAt(x, y).Y]})
		}
	}
	return out
}

// adaptiveThreshold binarizes against the local mean over a fixed window,
// computed with an integral image so the cost stays linear in pixels. It is
// the most expensive stage and the last resort for frames where global
// contrast stretching is not enough (uneven lighting across the label).
func adaptiveThreshold(img image.Image) image.Image {
	g := toGray(img)
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return g
	}

	// integral[y][x] = sum of pixels in the rectangle [0,0)..(x,y).
	integral := make([][]int64, h+1)
	for i := range integral {
		integral[i] = make([]int64, w+1)
	}
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := thresholdWindow / 2
	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half+1, y+half+1
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 > w {
				x1 = w
			}
			if y1 > h {
				y1 = h
			}
			area := int64((x1 - x0) * (y1 - y0))
			sum := integral[y1][x1] - integral[y0][x1] - integral[y1][x0] + integral[y0][x0]
			mean := sum / area

			v := uint8(255)
			if int64(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y) < mean-thresholdBias {
				v = 0
			}
			out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
		}
	}
	return out
}
