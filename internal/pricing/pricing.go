// Package pricing holds the menu price configuration and the pure price
// arithmetic for cart lines.
package pricing

import "github.com/BeratAydogan/coffeehouse/internal/domain"

const (
	// DefaultBasePrice applies when the catalog item carries no price.
	DefaultBasePrice = 90

	// ExtraPrice is charged once per selected extra (shot, aroma).
	ExtraPrice = 10
)

type Size struct {
	Label     string
	PriceDiff float64
}

var sizes = []Size{
	{Label: "Küçük", PriceDiff: 0},
	{Label: "Orta", PriceDiff: 10},
	{Label: "Büyük", PriceDiff: 20},
}

var aromas = []string{"Vanilya", "Karamel", "Fındık"}

func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

func SizeByLabel(label string) (Size, bool) {
	for _, s := range sizes {
		if s.Label == label {
			return s, true
		}
	}
	return Size{}, false
}

func Aromas() []string {
	out := make([]string, len(aromas))
	copy(out, aromas)
	return out
}

func ValidAroma(aroma string) bool {
	for _, a := range aromas {
		if a == aroma {
			return true
		}
	}
	return false
}

// ComputeTotal prices a single unit: base plus size difference plus one
// extraPrice per selected extra. Inputs are validated by the caller.
func ComputeTotal(basePrice, sizeDiff float64, extraShot, extraAroma bool, extraPrice float64) float64 {
	total := basePrice + sizeDiff
	if extraShot {
		total += extraPrice
	}
	if extraAroma {
		total += extraPrice
	}
	return total
}

// UnitPrice derives the per-unit price from a line's stored total. The unit
// price is never stored separately; it is always total/quantity.
func UnitPrice(totalPrice float64, quantity int) float64 {
	if quantity < 1 {
		quantity = 1
	}
	return totalPrice / float64(quantity)
}

// Rescale computes the new line total for a quantity change. It works from
// the current unit price, not the catalog base price, so size and extras
// chosen at add time survive quantity edits. A zero stored total falls back
// to basePrice, matching a line written before any recompute.
func Rescale(totalPrice, basePrice float64, quantity, newQuantity int) float64 {
	if totalPrice == 0 {
		totalPrice = basePrice
	}
	return UnitPrice(totalPrice, quantity) * float64(newQuantity)
}

// CartTotal sums line totals; a missing total counts as zero.
func CartTotal(lines []domain.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.TotalPrice
	}
	return sum
}
