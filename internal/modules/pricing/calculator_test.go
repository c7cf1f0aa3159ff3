package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_ReferenceFixture(t *testing.T) {
	b := Compute("2025-01-01", "2025-01-04", 100)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 300.0, b.BasePrice)
	assert.Equal(t, 42.0, b.ServiceFee)  // round(300 * 0.14)
	assert.Equal(t, 50.0, b.CleaningFee)
	assert.Equal(t, 47.0, b.Taxes) // round(392 * 0.12)
	assert.Equal(t, 439.0, b.Total)
}

func TestCompute_MissingOrBadDates(t *testing.T) {
	cases := []struct {
		name          string
		in, out       string
	}{
		{"both empty", "", ""},
		{"missing check-in", "", "2025-01-04"},
		{"missing check-out", "2025-01-01", ""},
		{"garbage check-in", "not-a-date", "2025-01-04"},
		{"garbage check-out", "2025-01-01", "04/01/2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Compute(tc.in, tc.out, 250)
			assert.Equal(t, Breakdown{}, b, "absent dates must degrade to the zero breakdown")
		})
	}
}

func TestCompute_TotalIdentity(t *testing.T) {
	cases := []struct {
		in, out string
		rate    float64
	}{
		{"2025-01-01", "2025-01-02", 0},
		{"2025-01-01", "2025-01-02", 99.99},
		{"2025-01-01", "2025-01-08", 123.45},
		{"2025-03-10", "2025-03-25", 1},
		{"2025-06-01", "2025-06-30", 2000},
		{"2025-01-01", "2025-01-01", 100}, // same-day: nights=0, not rejected here
	}

	for _, tc := range cases {
		b := Compute(tc.in, tc.out, tc.rate)
		sum := b.BasePrice + b.ServiceFee + b.CleaningFee + b.Taxes
		assert.Equal(t, sum, b.Total, "total must equal the exact component sum for %s..%s @ %v", tc.in, tc.out, tc.rate)
	}
}

func TestCompute_SameDayRange(t *testing.T) {
	// Zero nights still produces the flat cleaning fee and its tax; the
	// booking validator is what rejects this range before persistence.
	b := Compute("2025-05-10", "2025-05-10", 400)

	assert.Equal(t, 0, b.Nights)
	assert.Equal(t, 0.0, b.BasePrice)
	assert.Equal(t, 50.0, b.CleaningFee)
	assert.Equal(t, 6.0, b.Taxes) // round(50 * 0.12)
	assert.Equal(t, 56.0, b.Total)
}

func TestCompute_InvertedRangeNotRejected(t *testing.T) {
	b := Compute("2025-01-04", "2025-01-01", 100)
	assert.Equal(t, -3, b.Nights)
	assert.Equal(t, b.BasePrice+b.ServiceFee+b.CleaningFee+b.Taxes, b.Total)
}

func TestCompute_RoundingHalfAwayFromZero(t *testing.T) {
	// 1 night @ 25: service = round(3.5) = 4, not 3.
	b := Compute("2025-01-01", "2025-01-02", 25)
	assert.Equal(t, 4.0, b.ServiceFee)
}
