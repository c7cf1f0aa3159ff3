package pricing

import (
	"fmt"
	"math"
	"strings"
)

// SARPerUSD is a fixed conversion rate, not a live FX feed. Deliberate
// simplification carried over from the original product.
const SARPerUSD = 3.75

func SARToUSD(amount float64) float64 {
	return round2(amount / SARPerUSD)
}

func USDToSAR(amount float64) float64 {
	return round2(amount * SARPerUSD)
}

// FormatSAR renders a fixed-point 2-decimal amount with thousands grouping,
// e.g. "SAR 1,250.00".
func FormatSAR(amount float64) string {
	neg := amount < 0 || math.Signbit(amount)
	s := fmt.Sprintf("%.2f", math.Abs(amount))

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	if neg {
		return "SAR -" + b.String() + frac
	}
	return "SAR " + b.String() + frac
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
