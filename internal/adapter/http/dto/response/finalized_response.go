package response

import (
	"mecanica_parts/internal/domain/entities"
	"time"
)

type FinalizedEntryResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FinalizedAt time.Time `json:"finalized_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromFinalizedEntry(e entities.FinalizedEntry) FinalizedEntryResponse {
	return FinalizedEntryResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		FinalizedAt: e.FinalizedAt,
		CreatedAt:   e.CreatedAt,
	}
}

func FromFinalizedEntries(entries []entities.FinalizedEntry) []FinalizedEntryResponse {
	out := make([]FinalizedEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromFinalizedEntry(e))
	}
	return out
}

type FinalizedLineResponse struct {
	EntryID  string `json:"entry_id"`
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

func FromFinalizedLines(lines []entities.FinalizedLine) []FinalizedLineResponse {
	out := make([]FinalizedLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FinalizedLineResponse{
			EntryID:  l.EntryID,
			Barcode:  l.Barcode,
			Quantity: l.Quantity,
		})
	}
	return out
}
