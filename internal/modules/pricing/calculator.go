package pricing

import (
	"math"
	"time"
)

// Fee rules for every booking on the platform. Centralized here so the
// server-side validator and any preview endpoint price identically.
const (
	ServiceFeeRate = 0.14
	CleaningFee    = 50.0
	TaxRate        = 0.12

	dateLayout = "2006-01-02"
)

// Breakdown itemizes the components of a booking price. The invariant
// Total == BasePrice + ServiceFee + CleaningFee + Taxes holds for every
// value produced by Compute.
type Breakdown struct {
	Nights      int     `json:"nights"`
	BasePrice   float64 `json:"base_price"`
	ServiceFee  float64 `json:"service_fee"`
	CleaningFee float64 `json:"cleaning_fee"`
	Taxes       float64 `json:"taxes"`
	Total       float64 `json:"total"`
}

// Compute derives the full price breakdown for a stay. It is pure
// arithmetic: an absent or unparseable date yields the all-zero breakdown
// (so a partially filled form can still render), and an inverted range is
// not rejected here — that is the booking validator's job.
func Compute(checkIn, checkOut string, nightlyRate float64) Breakdown {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return Breakdown{}
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return Breakdown{}
	}

	nights := Nights(in, out)
	base := float64(nights) * nightlyRate
	serviceFee := math.Round(base * ServiceFeeRate)
	taxes := math.Round((base + serviceFee + CleaningFee) * TaxRate)

	return Breakdown{
		Nights:      nights,
		BasePrice:   base,
		ServiceFee:  serviceFee,
		CleaningFee: CleaningFee,
		Taxes:       taxes,
		Total:       base + serviceFee + CleaningFee + taxes,
	}
}

// Nights returns the stay length in whole days, rounding partial days up.
// checkOut at or before checkIn gives a count <= 0.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
