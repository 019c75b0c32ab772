package scanner

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// binaryOnlyDecoder succeeds only on strictly bi-level frames, standing in
// for a symbol readable only after thresholding.
type binaryOnlyDecoder struct{}

func (d *binaryOnlyDecoder) Decode(img image.Image) (string, error) {
	g := toGray(img)
	for _, v := range g.Pix {
		if v != 0 && v != 255 {
			return "", ErrNoSymbol
		}
	}
	return "BINARY-OK", nil
}

type neverDecoder struct {
	attempts int
}

func (d *neverDecoder) Decode(image.Image) (string, error) {
	d.attempts++
	return "", ErrNoSymbol
}

type firstHitDecoder struct{}

func (firstHitDecoder) Decode(image.Image) (string, error) {
	return "FIRST", nil
}

// barGradient is a frame no plain decode can binarize: dark bars over a
// horizontal brightness gradient.
func barGradient() *image.Gray {
	w, h := 100, 40
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := uint8(120 + x)
			if (x/5)%2 == 0 {
				base -= 60
			}
			img.SetGray(x, y, color.Gray{Y: base})
		}
	}
	return img
}

func TestPipeline_FirstStageWins(t *testing.T) {
	p := NewPipelineWithDecoder(firstHitDecoder{})

	res, err := p.Decode(barGradient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stage != "identity" || res.Symbol != "FIRST" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPipeline_FallsThroughToThreshold(t *testing.T) {
	p := NewPipelineWithDecoder(&binaryOnlyDecoder{})

	res, err := p.Decode(barGradient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stage != "threshold" {
		t.Fatalf("expected threshold stage, got %q", res.Stage)
	}
	if res.Symbol != "BINARY-OK" {
		t.Fatalf("unexpected symbol %q", res.Symbol)
	}
}

func TestPipeline_AllStagesFail(t *testing.T) {
	d := &neverDecoder{}
	p := NewPipelineWithDecoder(d)

	_, err := p.Decode(barGradient())
	if !IsNoSymbol(err) {
		t.Fatalf("expected ErrNoSymbol, got %v", err)
	}
	if d.attempts != 4 {
		t.Fatalf("expected 4 stage attempts, got %d", d.attempts)
	}
}

func TestPipeline_Reentrant(t *testing.T) {
	// Two consecutive decodes of the same frame must behave identically;
	// the pipeline carries no state between calls.
	p := NewPipelineWithDecoder(&binaryOnlyDecoder{})
	frame := barGradient()

	first, err := p.Decode(frame)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := p.Decode(frame)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if first != second {
		t.Fatalf("results diverged: %+v vs %+v", first, second)
	}
}

func TestPipeline_DecodesGeneratedQR(t *testing.T) {
	matrix, err := qrcode.NewQRCodeWriter().Encode("PART-4711", gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("encode qr: %v", err)
	}
	frame := image.NewGray(image.Rect(0, 0, matrix.GetWidth(), matrix.GetHeight()))
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			v := uint8(255)
			if matrix.Get(x, y) {
				v = 0
			}
			frame.SetGray(x, y, color.Gray{Y: v})
		}
	}

	res, err := NewPipeline().Decode(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Symbol != "PART-4711" {
		t.Fatalf("expected PART-4711, got %q", res.Symbol)
	}
}

func TestIsNoSymbol(t *testing.T) {
	if !IsNoSymbol(ErrNoSymbol) {
		t.Fatalf("ErrNoSymbol must match")
	}
	if IsNoSymbol(errors.New("camera gone")) {
		t.Fatalf("unrelated error must not match")
	}
}
