package request

// ScanRequest submits a barcode read against an open session.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// StartSessionRequest opens a scanning session, optionally attached
// to a camera stream.
type StartSessionRequest struct {
	CameraURL string `json:"camera_url"`
}
