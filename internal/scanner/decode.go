package scanner

import (
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoSymbol is the negative result of a decode attempt: the frame holds
// no readable barcode. It is a control signal, not a failure.
var ErrNoSymbol = errors.New("no symbol found in frame")

// SymbolDecoder is one stateless decode attempt over a raster image.
type SymbolDecoder interface {
	Decode(img image.Image) (string, error)
}

// zxingDecoder tries the symbologies seen on parts labels: Code 128 and
// EAN-13 for printed part barcodes, QR for supplier labels.
type zxingDecoder struct {
	readers []gozxing.Reader
	hints   map[gozxing.DecodeHintType]interface{}
}

var _ SymbolDecoder = (*zxingDecoder)(nil)

func NewSymbolDecoder() SymbolDecoder {
	return &zxingDecoder{
		readers: []gozxing.Reader{
			oned.NewCode128Reader(),
			oned.NewEAN13Reader(),
			qrcode.NewQRCodeReader(),
		},
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (d *zxingDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	for _, r := range d.readers {
		result, err := r.Decode(bmp, d.hints)
		if err == nil && result.GetText() != "" {
			return result.GetText(), nil
		}
	}
	return "", ErrNoSymbol
}
