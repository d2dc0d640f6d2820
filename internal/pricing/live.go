package pricing

import (
	"context"
	"fmt"

	"networth/internal/apperrors"
	"networth/internal/yahoo"
)

// Live queries the Yahoo Finance chart API for the last traded price of a
// symbol. When the last-trade field is missing it falls back to the most
// recent closing price in a five-day window; when both are missing the
// quote fails and the caller keeps whatever it had cached.
type Live struct {
	client yahoo.Client
}

// NewLive creates a live source backed by the given Yahoo client.
func NewLive(client yahoo.Client) *Live {
	return &Live{client: client}
}

// Quote fetches the current price for the symbol.
func (l *Live) Quote(ctx context.Context, symbol string) (float64, error) {
	raw, err := l.client.QueryFiveDaySymbol(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %w", symbol, err)
	}

	chart, err := l.client.ParseChart(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse chart for %s: %w", symbol, err)
	}

	if chart.RegularMarketPrice > 0 {
		return chart.RegularMarketPrice, nil
	}

	if close, ok := chart.LastClose(); ok {
		return close, nil
	}

	return 0, fmt.Errorf("%w: %s", apperrors.ErrQuoteUnavailable, symbol)
}

// Name identifies the source variant for logging.
func (l *Live) Name() string {
	return "live"
}
