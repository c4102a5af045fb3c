package models

// AdjustStockRequest represents a request to change an item's stock level.
// Requests arrive from untyped boundaries (CLI arguments, decoded files), so
// they are validated before they reach the table.
type AdjustStockRequest struct {
	Item string `json:"item" validate:"required"`
	Qty  int    `json:"qty" validate:"min=0"`
}
