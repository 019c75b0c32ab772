package scanner

import (
	"image"
	"image/color"
	"testing"
)

func grayRamp(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(100 + (x*20)/w)})
		}
	}
	return img
}

func TestTransforms_PureApply(t *testing.T) {
	src := grayRamp(40, 40)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	for _, tr := range NewPipeline().transforms {
		if tr.Name == "identity" {
			continue
		}
		out := tr.Apply(src)
		if out == nil {
			t.Fatalf("%s: nil output", tr.Name)
		}
		for i := range src.Pix {
			if src.Pix[i] != before[i] {
				t.Fatalf("%s mutated its input at offset %d", tr.Name, i)
			}
		}
	}
}

func TestGrayscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 50, B: 10, A: 255})
		}
	}

	out, ok := grayscale(src).(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray")
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
	// Every pixel should land on the same luma value.
	first := out.GrayAt(0, 0).Y
	if first == 0 || first == 255 {
		t.Fatalf("implausible luma %d", first)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if out.GrayAt(x, y).Y != first {
				t.Fatalf("uneven conversion at (%d,%d)", x, y)
			}
		}
	}
}

func TestEqualize_StretchesContrast(t *testing.T) {
	// A ramp squeezed into [100,120) should spread toward the full range.
	src := grayRamp(64, 64)
	out := equalize(src).(*image.Gray)

	minV, maxV := uint8(255), uint8(0)
	for _, v := range out.Pix {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV-minV <= 20 {
		t.Fatalf("contrast not stretched: range [%d,%d]", minV, maxV)
	}
	if minV != 0 {
		t.Fatalf("darkest bin must map to black, got %d", minV)
	}
}

func TestEqualize_FlatFrameUnchanged(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = 128
	}
	out := equalize(src).(*image.Gray)
	for i, v := range out.Pix {
		if v != 128 {
			t.Fatalf("flat frame changed at offset %d: %d", i, v)
		}
	}
}

func TestAdaptiveThreshold_Binarizes(t *testing.T) {
	// Dark bars on a light background with a brightness gradient across the
	// frame; a global threshold would lose one end of it.
	w, h := 100, 40
	src := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := uint8(120 + x) // gradient
			if (x/5)%2 == 0 {
				base -= 60 // bar
			}
			src.SetGray(x, y, color.Gray{Y: base})
		}
	}

	out := adaptiveThreshold(src).(*image.Gray)
	black, white := 0, 0
	for _, v := range out.Pix {
		switch v {
		case 0:
			black++
		case 255:
			white++
		default:
			t.Fatalf("non binary pixel %d", v)
		}
	}
	if black == 0 || white == 0 {
		t.Fatalf("expected both classes, got black=%d white=%d", black, white)
	}
}

func TestAdaptiveThreshold_EmptyImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 0, 0))
	if out := adaptiveThreshold(src); out == nil {
		t.Fatalf("nil output for empty frame")
	}
}
