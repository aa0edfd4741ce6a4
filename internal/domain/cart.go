package domain

import "time"

// CartLine is one configured drink waiting for checkout. Each line is its
// own document in the cart collection; the quantity rescale rule keeps
// TotalPrice consistent with the unit price chosen at add time.
type CartLine struct {
	ID                string    `bson:"-" json:"id"`
	CoffeeID          string    `bson:"coffee_id,omitempty" json:"coffeeId,omitempty"`
	Title             string    `bson:"title" json:"title"`
	Size              string    `bson:"size" json:"size"`
	BasePrice         float64   `bson:"base_price" json:"basePrice"`
	ExtraShot         bool      `bson:"extra_shot" json:"extraShot"`
	ExtraAromaEnabled bool      `bson:"extra_aroma_enabled" json:"extraAromaEnabled"`
	SelectedAroma     string    `bson:"selected_aroma,omitempty" json:"selectedAroma,omitempty"`
	Quantity          int       `bson:"quantity" json:"quantity"`
	TotalPrice        float64   `bson:"total_price" json:"totalPrice"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	Image             string    `bson:"image,omitempty" json:"image,omitempty"`
}
