package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the capability surface the pricing layer depends on. It is
// satisfied by FinanceClient and by test stubs.
type Client interface {
	QueryFiveDaySymbol(ctx context.Context, symbol string) (Response, error)
	ParseChart(result Response) (PriceChart, error)
}

// FinanceClient provides methods for fetching price data from the Yahoo
// Finance chart API. It wraps an HTTP client with a request timeout.
type FinanceClient struct {
	httpClient *http.Client
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP settings.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// QueryFiveDaySymbol fetches the last 5 days of daily price data for a
// symbol. The range-based query (range=5d) selects the most recent five
// trading days, which is enough to recover the latest close when the
// last-trade price is unavailable.
func (c *FinanceClient) QueryFiveDaySymbol(ctx context.Context, symbol string) (Response, error) {
	url := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=5d", symbol)
	result, err := c.query(ctx, url)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return result, nil
}

// ParseChart converts a raw chart API response into a structured price
// chart. It validates that timestamps and close prices are present and
// that the data arrays have matching lengths.
func (c *FinanceClient) ParseChart(yahooResult Response) (PriceChart, error) {

	result := yahooResult.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return PriceChart{}, fmt.Errorf("no price data returned")
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return PriceChart{}, fmt.Errorf("no close prices returned")
	}

	quote := result.Indicators.Quote[0]
	days := len(result.Timestamp)
	if len(quote.Close) != days ||
		len(quote.Open) != days ||
		len(quote.Volume) != days ||
		len(quote.High) != days ||
		len(quote.Low) != days {
		return PriceChart{}, fmt.Errorf("mismatched data lengths")
	}

	indicators := make([]Indicator, days)
	for i, v := range result.Timestamp {
		indicators[i].Date = time.Unix(v, 0).UTC()
		indicators[i].PriceOpen = quote.Open[i]
		indicators[i].PriceClose = quote.Close[i]
		indicators[i].Volume = quote.Volume[i]
		indicators[i].PriceHigh = quote.High[i]
		indicators[i].PriceLow = quote.Low[i]
	}

	return PriceChart{
		Symbol:             result.Meta.Symbol,
		Currency:           result.Meta.Currency,
		ExchangeName:       result.Meta.ExchangeName,
		RegularMarketPrice: result.Meta.RegularMarketPrice,
		Indicators:         indicators,
	}, nil
}

// query executes an HTTP request against the chart API. The User-Agent
// header mimics a browser to avoid API blocking.
func (c *FinanceClient) query(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
