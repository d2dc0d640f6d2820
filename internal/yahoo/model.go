package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. Chart.Result typically contains one element;
// Chart.Error carries an optional error message from the API.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload of a chart API response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds the metadata, timestamps and price indicators for one symbol.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta carries symbol metadata. RegularMarketPrice is the last traded
// price at the time of the query and is the primary field the live price
// source reads; the daily close series is its fallback.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	ExchangeName       string  `json:"exchangeName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// IndicatorsContainer wraps the quote arrays of a chart result.
type IndicatorsContainer struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel OHLCV arrays, one entry per timestamp. Yahoo
// reports missing data points as null, which decode to zero values here.
type Quote struct {
	Open   []float64 `json:"open"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
}

// PriceChart is the parsed, structured form of a chart response.
type PriceChart struct {
	Currency           string      `json:"currency"`
	Symbol             string      `json:"symbol"`
	ExchangeName       string      `json:"exchangeName"`
	RegularMarketPrice float64     `json:"regularMarketPrice"`
	Indicators         []Indicator `json:"indicators"`
}

// Indicator represents a single day's price data.
type Indicator struct {
	Date       time.Time
	PriceOpen  float64
	PriceClose float64
	Volume     int64
	PriceHigh  float64
	PriceLow   float64
}

// LastClose returns the most recent non-zero closing price in the chart.
// A zero close means Yahoo reported null for that day (market holiday or
// partial data), so those entries are skipped.
func (c PriceChart) LastClose() (float64, bool) {
	for i := len(c.Indicators) - 1; i >= 0; i-- {
		if c.Indicators[i].PriceClose > 0 {
			return c.Indicators[i].PriceClose, true
		}
	}
	return 0, false
}
