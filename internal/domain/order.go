package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of the cart at checkout time. Items are a
// copy, not references, so later cart edits never touch order history.
type Order struct {
	ID         uuid.UUID  `json:"id"`
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`
}
