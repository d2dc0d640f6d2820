package testutil

import (
	"context"
	"time"

	"networth/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns predefined test data instead of making actual API calls.
type MockYahooClient struct {
	// MockResponse is the response to return from query methods
	MockResponse yahoo.Response
	// MockError is the error to return from query methods
	MockError error
	// QueryCount tracks how many times a query method was called
	QueryCount int
}

// NewMockYahooClient creates a new mock Yahoo client with default test data.
// The default data includes 5 days of historical prices suitable for testing.
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{
		MockResponse: CreateMockYahooResponse(5),
		MockError:    nil,
		QueryCount:   0,
	}
}

// QueryFiveDaySymbol mocks the 5-day symbol query with predefined test data.
// It returns the configured MockResponse and MockError.
func (m *MockYahooClient) QueryFiveDaySymbol(_ context.Context, _ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.MockResponse, nil
}

// ParseChart delegates to the real ParseChart method since it's pure logic with no side effects.
func (m *MockYahooClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	client := yahoo.NewFinanceClient()
	return client.ParseChart(yahooResult)
}

// WithError configures the mock to return the specified error.
func (m *MockYahooClient) WithError(err error) *MockYahooClient {
	m.MockError = err
	return m
}

// WithResponse configures the mock to return the specified response.
func (m *MockYahooClient) WithResponse(resp yahoo.Response) *MockYahooClient {
	m.MockResponse = resp
	return m
}

// WithMarketPrice configures the mock's last-trade price.
func (m *MockYahooClient) WithMarketPrice(price float64) *MockYahooClient {
	m.MockResponse.Chart.Result[0].Meta.RegularMarketPrice = price
	return m
}

// CreateMockYahooResponse creates a mock Yahoo Finance API response with
// test data. The response includes `days` number of days of price data,
// ending yesterday, with closes stepping 100.00, 101.00, ... per day and
// no last-trade price set.
func CreateMockYahooResponse(days int) yahoo.Response {
	timestamps := make([]int64, days)
	opens := make([]float64, days)
	closes := make([]float64, days)
	highs := make([]float64, days)
	lows := make([]float64, days)
	volumes := make([]int64, days)

	end := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, i-(days-1))
		timestamps[i] = day.Unix()
		opens[i] = 100.0 + float64(i)
		closes[i] = 100.0 + float64(i)
		highs[i] = 101.0 + float64(i)
		lows[i] = 99.0 + float64(i)
		volumes[i] = 1_000_000
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Currency:     "USD",
						Symbol:       "TEST",
						ExchangeName: "NMS",
					},
					Timestamp: timestamps,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   opens,
								Close:  closes,
								Volume: volumes,
								High:   highs,
								Low:    lows,
							},
						},
					},
				},
			},
		},
	}
}
