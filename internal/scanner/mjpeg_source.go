package scanner

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// MJPEGSource reads frames from an IP camera's MJPEG stream
// (multipart/x-mixed-replace). One source owns one HTTP stream; Close tears
// the connection down deterministically so the camera is released the
// moment scanning stops.
type MJPEGSource struct {
	url    string
	resp   *http.Response
	reader *multipart.Reader
	cancel context.CancelFunc
}

var _ FrameSource = (*MJPEGSource)(nil)

// OpenMJPEG connects to the camera stream. The context bounds the lifetime
// of the whole stream, not just the dial.
func OpenMJPEG(ctx context.Context, url string) (*MJPEGSource, error) {
	sctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(sctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, &DeviceError{Device: url, Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, &DeviceError{Device: url, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, &DeviceError{Device: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		resp.Body.Close()
		cancel()
		return nil, &DeviceError{Device: url, Err: fmt.Errorf("not an mjpeg stream: content-type %q", resp.Header.Get("Content-Type"))}
	}

	return &MJPEGSource{
		url:    url,
		resp:   resp,
		reader: multipart.NewReader(resp.Body, params["boundary"]),
		cancel: cancel,
	}, nil
}

func (s *MJPEGSource) NextFrame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	part, err := s.reader.NextPart()
	if err != nil {
		// Stream ended or broke mid-flight; the camera is gone until the
		// operator re-opens it.
		return nil, &DeviceError{Device: s.url, Err: err}
	}
	defer part.Close()

	img, err := jpeg.Decode(part)
	if err != nil {
		return nil, &DeviceError{Device: s.url, Err: fmt.Errorf("bad frame: %w", err)}
	}
	return img, nil
}

func (s *MJPEGSource) Close() error {
	s.cancel()
	return s.resp.Body.Close()
}
