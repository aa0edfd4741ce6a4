package pricing

import (
	"testing"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal_MediumWithShot(t *testing.T) {
	size, ok := SizeByLabel("Orta")
	require.True(t, ok)

	total := ComputeTotal(90, size.PriceDiff, true, false, ExtraPrice)
	assert.Equal(t, 110.0, total)
}

func TestComputeTotal_AllCombinations(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		size      string
		shot      bool
		aroma     bool
		wantTotal float64
	}{
		{"small plain", 90, "Küçük", false, false, 90},
		{"small both extras", 90, "Küçük", true, true, 110},
		{"medium aroma only", 90, "Orta", false, true, 110},
		{"large plain", 90, "Büyük", false, false, 110},
		{"large both extras", 90, "Büyük", true, true, 130},
		{"catalog price overrides default", 120, "Orta", true, false, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := SizeByLabel(tt.size)
			require.True(t, ok)
			got := ComputeTotal(tt.base, size.PriceDiff, tt.shot, tt.aroma, ExtraPrice)
			assert.Equal(t, tt.wantTotal, got)
		})
	}
}

func TestComputeTotal_MonotonicInExtras(t *testing.T) {
	for _, size := range Sizes() {
		plain := ComputeTotal(90, size.PriceDiff, false, false, ExtraPrice)
		withShot := ComputeTotal(90, size.PriceDiff, true, false, ExtraPrice)
		withAroma := ComputeTotal(90, size.PriceDiff, false, true, ExtraPrice)
		withBoth := ComputeTotal(90, size.PriceDiff, true, true, ExtraPrice)

		assert.GreaterOrEqual(t, withShot, plain)
		assert.GreaterOrEqual(t, withAroma, plain)
		assert.GreaterOrEqual(t, withBoth, withShot)
		assert.GreaterOrEqual(t, withBoth, withAroma)
	}
}

func TestUnitPrice_ZeroQuantityTreatedAsOne(t *testing.T) {
	assert.Equal(t, 110.0, UnitPrice(110, 0))
	assert.Equal(t, 110.0, UnitPrice(110, 1))
	assert.Equal(t, 55.0, UnitPrice(110, 2))
}

func TestRescale_UnitPriceInvariantUnderQuantityEdits(t *testing.T) {
	// A line added at 110 per unit keeps that unit price through any
	// sequence of quantity changes.
	total := 110.0
	qty := 1

	for _, newQty := range []int{3, 1, 5, 2, 7, 1} {
		total = Rescale(total, 90, qty, newQty)
		qty = newQty
		assert.InDelta(t, 110.0, UnitPrice(total, qty), 1e-9)
	}
}

func TestRescale_SameQuantityLeavesTotalUnchanged(t *testing.T) {
	assert.Equal(t, 220.0, Rescale(220, 90, 2, 2))
}

func TestRescale_FallsBackToBasePrice(t *testing.T) {
	// Stored total of zero means the line was never priced; the base price
	// stands in as the unit price.
	assert.Equal(t, 270.0, Rescale(0, 90, 1, 3))
}

func TestCartTotal(t *testing.T) {
	lines := []domain.CartLine{
		{TotalPrice: 110},
		{TotalPrice: 45},
	}
	assert.Equal(t, 155.0, CartTotal(lines))

	// Missing totals count as zero.
	lines = append(lines, domain.CartLine{})
	assert.Equal(t, 155.0, CartTotal(lines))

	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestSizeByLabel_Unknown(t *testing.T) {
	_, ok := SizeByLabel("Mega")
	assert.False(t, ok)
}

func TestValidAroma(t *testing.T) {
	assert.True(t, ValidAroma("Karamel"))
	assert.False(t, ValidAroma("Çilek"))
}
