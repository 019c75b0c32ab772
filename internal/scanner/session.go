package scanner

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// CommitFunc hands a decoded symbol to the commit path. It must be the same
// path manual barcode entry takes.
type CommitFunc func(ctx context.Context, barcode string) error

// SessionConfig controls the scan loop.
type SessionConfig struct {
	// SingleShot stops the loop after the first successful decode;
	// continuous mode keeps going for rapid sequential scanning.
	SingleShot bool
	// FrameInterval is the pause between frames that yielded no symbol,
	// keeping the transform ladder from spinning a core at camera rate.
	FrameInterval time.Duration
}

// Session drives one camera against one repair order: read a frame, run the
// pipeline, commit the symbol, repeat. Decodes are handled strictly one at a
// time; a symbol arriving while a commit is in flight waits behind it, which
// preserves the capture order of barcode commits.
type Session struct {
	src    FrameSource
	pipe   *Pipeline
	commit CommitFunc
	cfg    SessionConfig
	log    *slog.Logger
}

func NewSession(src FrameSource, pipe *Pipeline, commit CommitFunc, cfg SessionConfig, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 50 * time.Millisecond
	}
	return &Session{src: src, pipe: pipe, commit: commit, cfg: cfg, log: log}
}

// Run loops until the context is cancelled, the camera fails, or (in
// single-shot mode) a symbol is committed. The frame source is closed on
// every exit path so the camera is released deterministically.
func (s *Session) Run(ctx context.Context) error {
	defer s.src.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := s.src.NextFrame(ctx)
		if err != nil {
			var de *DeviceError
			if errors.As(err, &de) {
				s.log.Error("camera failure, scan loop stopped", "device", de.Device, "err", de.Err)
			}
			return err
		}

		res, err := s.pipe.Decode(frame)
		if err != nil {
			if IsNoSymbol(err) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(s.cfg.FrameInterval):
				}
				continue
			}
			return err
		}

		s.log.Debug("symbol decoded", "stage", res.Stage)
		if err := s.commit(ctx, res.Symbol); err != nil {
			return err
		}

		if s.cfg.SingleShot {
			return nil
		}
	}
}
