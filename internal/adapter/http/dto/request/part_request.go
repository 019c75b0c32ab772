package request

// PartQuantityRequest overrides the quantity of a scanned part.
type PartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
