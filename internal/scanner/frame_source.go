// Package scanner turns a camera frame stream into decoded barcode symbols
// through a layered transform-and-decode pipeline.
package scanner

import (
	"context"
	"fmt"
	"image"
)

// FrameSource acquires raster frames from a camera. Implementations own the
// underlying device/stream and must release it on Close.
type FrameSource interface {
	NextFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// DeviceError marks camera acquisition failures (no device, permission
// denied, stream gone). It is fatal to the scan loop, unlike a frame with no
// decodable symbol, which is just a negative result.
type DeviceError struct {
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("camera %s: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }
