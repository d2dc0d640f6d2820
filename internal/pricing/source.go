// Package pricing defines the price-acquisition abstraction: a Source
// produces the current price per share for a symbol. The simulated and
// live variants are selected at construction time from configuration,
// never by runtime flag branches at call sites.
package pricing

import "context"

// Source produces current prices for ticker symbols. A Source that cannot
// quote a symbol returns an error; callers keep any previously cached
// value and log the failure.
type Source interface {
	// Quote returns the current price per share for the symbol.
	Quote(ctx context.Context, symbol string) (float64, error)

	// Name identifies the source variant for logging.
	Name() string
}
