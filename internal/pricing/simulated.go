package pricing

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"
)

// basePrices is the fixed per-symbol price table the simulated source
// jitters around. Symbols not in the table default to 100.0.
var basePrices = map[string]float64{
	"GOOGL": 140.0,
	"SPY":   657,
	"NVDA":  177.82,
	"META":  755.59,
	"AMZN":  228.15,
	"TSLA":  395.94,
	"MSFT":  509.90,
	"QCOM":  161.83,
	"AMD":   158.57,
	"INTC":  24.08,
	"GLD":   335.42,
	"VGLT":  57.18,
	"VXUS":  73.09,
}

// defaultBasePrice is used for symbols absent from the base table.
const defaultBasePrice = 100.0

// Simulated is a deterministic-up-to-the-draw price source:
// price = base + base * U(-0.02, 0.02), rounded to two decimal places.
// Seeding the random source makes quotes reproducible for testing.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated creates a simulated source drawing jitter from rng.
func NewSimulated(rng *rand.Rand) *Simulated {
	return &Simulated{rng: rng}
}

// Quote returns a jittered price around the symbol's base price.
// It never fails.
func (s *Simulated) Quote(_ context.Context, symbol string) (float64, error) {
	base, ok := basePrices[strings.ToUpper(symbol)]
	if !ok {
		base = defaultBasePrice
	}

	s.mu.Lock()
	draw := s.rng.Float64()
	s.mu.Unlock()

	jitter := base * (draw - 0.5) * 0.04 // ±2%
	return math.Round((base+jitter)*100) / 100, nil
}

// Name identifies the source variant for logging.
func (s *Simulated) Name() string {
	return "simulated"
}
