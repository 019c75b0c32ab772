package response

import (
	"mecanica_parts/internal/domain/entities"
	"time"
)

type PartResponse struct {
	OrderID   string    `json:"order_id"`
	Barcode   string    `json:"barcode"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPart(p entities.ScannedPart) PartResponse {
	return PartResponse{
		OrderID:   p.OrderID,
		Barcode:   p.Barcode,
		Quantity:  p.Quantity,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromParts(parts []entities.ScannedPart) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}
