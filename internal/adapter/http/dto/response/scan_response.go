package response

import (
	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase"
	"time"
)

type CommitResponse struct {
	Status string        `json:"status"`
	Reason string        `json:"reason,omitempty"`
	Part   *PartResponse `json:"part,omitempty"`
}

func FromCommitResult(r usecase.CommitResult) CommitResponse {
	out := CommitResponse{
		Status: string(r.Status),
		Reason: r.Reason,
	}
	if r.Status == usecase.CommitCommitted {
		p := FromPart(r.Part)
		out.Part = &p
	}
	return out
}

type SessionResponse struct {
	OrderID string `json:"order_id"`
	State   string `json:"state"`
}

type PendingScanResponse struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	Barcode   string    `json:"barcode"`
	Retries   int       `json:"retries"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPendingScans(pending []entities.PendingScan) []PendingScanResponse {
	out := make([]PendingScanResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, PendingScanResponse{
			ID:        p.ID,
			OrderID:   p.OrderID,
			Barcode:   p.Barcode,
			Retries:   p.Retries,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}

type DrainResponse struct {
	Committed int `json:"committed"`
	Retained  int `json:"retained"`
}

func FromDrainResult(r usecase.DrainResult) DrainResponse {
	return DrainResponse{
		Committed: len(r.Committed),
		Retained:  len(r.StillFailed),
	}
}
