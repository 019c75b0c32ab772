package scanner

import (
	"errors"
	"image"

	"mecanica_parts/internal/infrastructure/metrics"
)

// DecodeResult is a successful decode plus the pipeline stage that produced
// it, for diagnostics.
type DecodeResult struct {
	Symbol string
	Stage  string
}

// Pipeline runs the fixed transform ladder over one frame: untouched frame
// first, then grayscale, then histogram equalization, then adaptive
// thresholding. Stages are ordered by cost; the cheap ones run on every
// frame at camera rate, the expensive ones only when the cheap ones come up
// empty. The pipeline holds no per-frame state, so the scan loop can call it
// continuously without accumulating stale buffers.
type Pipeline struct {
	decoder    SymbolDecoder
	transforms []Transform
}

func NewPipeline() *Pipeline {
	return NewPipelineWithDecoder(NewSymbolDecoder())
}

func NewPipelineWithDecoder(d SymbolDecoder) *Pipeline {
	return &Pipeline{
		decoder: d,
		transforms: []Transform{
			{Name: "identity", Apply: identity},
			{Name: "grayscale", Apply: grayscale},
			{Name: "equalized", Apply: equalize},
			{Name: "threshold", Apply: adaptiveThreshold},
		},
	}
}

// Decode tries each stage in order and returns the first hit. All stages
// failing yields ErrNoSymbol; the caller simply moves on to the next frame.
func (p *Pipeline) Decode(frame image.Image) (DecodeResult, error) {
	for _, t := range p.transforms {
		metrics.DecodeAttempts.WithLabelValues(t.Name).Inc()

		symbol, err := p.decoder.Decode(t.Apply(frame))
		if err != nil {
			// Any decode failure, ErrNoSymbol or a broken bitmap, just
			// advances the ladder.
			continue
		}
		metrics.DecodeSuccess.WithLabelValues(t.Name).Inc()
		return DecodeResult{Symbol: symbol, Stage: t.Name}, nil
	}
	return DecodeResult{}, ErrNoSymbol
}

// IsNoSymbol reports whether err is the pipeline's negative result.
func IsNoSymbol(err error) bool {
	return errors.Is(err, ErrNoSymbol)
}
