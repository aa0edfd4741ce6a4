package domain

// CatalogItem mirrors the upstream coffee API payload. Price is optional
// there; callers fall back to the default base price when it is zero.
type CatalogItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}
