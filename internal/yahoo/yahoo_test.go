package yahoo_test

import (
	"testing"

	"networth/internal/testutil"
	"networth/internal/yahoo"
)

// TestFinanceClient_ParseChart tests parsing of raw chart API payloads.
//
// WHY: The chart response carries five parallel arrays that Yahoo does not
// guarantee to be consistent. The parser indexes all of them by timestamp,
// so a payload with a short sibling array must come back as an error, not
// a panic - ParseChart runs inside refresh workers where a panic would
// escape the HTTP recoverer.
func TestFinanceClient_ParseChart(t *testing.T) {
	client := yahoo.NewFinanceClient()

	t.Run("parses a well-formed response", func(t *testing.T) {
		// Setup
		resp := testutil.CreateMockYahooResponse(5)

		// Execute
		chart, err := client.ParseChart(resp)

		// Assert
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}
		if len(chart.Indicators) != 5 {
			t.Fatalf("Expected 5 indicators, got %d", len(chart.Indicators))
		}
		if chart.Indicators[4].PriceClose != 104.0 {
			t.Errorf("Expected newest close 104.0, got %v", chart.Indicators[4].PriceClose)
		}
	})

	t.Run("rejects a short close array", func(t *testing.T) {
		resp := testutil.CreateMockYahooResponse(5)
		quote := &resp.Chart.Result[0].Indicators.Quote[0]
		quote.Close = quote.Close[:3]

		if _, err := client.ParseChart(resp); err == nil {
			t.Fatal("Expected an error for a short close array")
		}
	})

	t.Run("rejects short sibling arrays", func(t *testing.T) {
		truncate := map[string]func(*yahoo.Quote){
			"open":   func(q *yahoo.Quote) { q.Open = q.Open[:3] },
			"volume": func(q *yahoo.Quote) { q.Volume = q.Volume[:3] },
			"high":   func(q *yahoo.Quote) { q.High = q.High[:3] },
			"low":    func(q *yahoo.Quote) { q.Low = q.Low[:3] },
		}

		for name, mutate := range truncate {
			resp := testutil.CreateMockYahooResponse(5)
			mutate(&resp.Chart.Result[0].Indicators.Quote[0])

			if _, err := client.ParseChart(resp); err == nil {
				t.Errorf("Expected an error for a short %s array", name)
			}
		}
	})

	t.Run("rejects an empty timestamp array", func(t *testing.T) {
		resp := testutil.CreateMockYahooResponse(5)
		resp.Chart.Result[0].Timestamp = nil

		if _, err := client.ParseChart(resp); err == nil {
			t.Fatal("Expected an error for missing timestamps")
		}
	})
}
