package receipt

import "time"

// Item is a single line item on a receipt.
type Item struct {
	ShortDescription string  `json:"shortDescription"`
	Price            float64 `json:"price"`
}

// Receipt is a normalized purchase receipt. Points is nil until the receipt
// has been scored; a stored receipt with nil Points gets its score backfilled
// on first points lookup.
type Receipt struct {
	Retailer     string    `json:"retailer"`
	PurchaseDate time.Time `json:"purchaseDate"`
	PurchaseTime string    `json:"purchaseTime"` // HH:MM, 24-hour
	Items        []Item    `json:"items"`
	Total        float64   `json:"total"`
	Points       *int64    `json:"points,omitempty"`
}

// Scored reports whether a points value has been attached.
func (r *Receipt) Scored() bool {
	return r.Points != nil
}
