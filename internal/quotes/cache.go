// Package quotes holds the in-memory mirror of current prices and the
// primary equity portfolio. The cache is a derived, rebuildable view with
// no independent source of truth: it can always be reconstructed from the
// entity store plus a price source, and it is valid only for the current
// process lifetime.
package quotes

import (
	"strings"
	"sync"

	"networth/internal/model"
)

// StockLister is the slice of the entity store the cache rebuilds from.
type StockLister interface {
	GetAll() ([]model.StockPosition, error)
}

// Cache is the process-wide price and portfolio mirror. It is constructed
// once and passed explicitly into the services that consume it; there is
// no package-level instance.
type Cache struct {
	mu        sync.RWMutex
	prices    map[string]float64
	portfolio map[string]float64
}

// NewCache creates an empty mirror.
func NewCache() *Cache {
	return &Cache{
		prices:    map[string]float64{},
		portfolio: map[string]float64{},
	}
}

// Price returns the cached quote for a symbol, or 0.0 when no quote is
// present. Absence is not an error: valuation treats unknown prices as zero.
func (c *Cache) Price(symbol string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prices[strings.ToUpper(symbol)]
}

// SetPrice stores a quote for a symbol, replacing any previous value.
func (c *Cache) SetPrice(symbol string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[strings.ToUpper(symbol)] = price
}

// Prices returns a snapshot of all cached quotes.
func (c *Cache) Prices() []model.PriceQuote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]model.PriceQuote, 0, len(c.prices))
	for symbol, price := range c.prices {
		snapshot = append(snapshot, model.PriceQuote{Symbol: symbol, Price: price})
	}
	return snapshot
}

// Portfolio returns a copy of the mirrored primary portfolio (symbol to shares).
func (c *Cache) Portfolio() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	mirror := make(map[string]float64, len(c.portfolio))
	for symbol, shares := range c.portfolio {
		mirror[symbol] = shares
	}
	return mirror
}

// RebuildFromStore reloads the primary portfolio mirror from the entity
// store. Cached prices are kept: a rebuild changes which positions are
// mirrored, not what they are worth.
func (c *Cache) RebuildFromStore(stocks StockLister) error {
	positions, err := stocks.GetAll()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.portfolio = make(map[string]float64, len(positions))
	for _, p := range positions {
		c.portfolio[strings.ToUpper(p.Symbol)] = p.Shares
	}
	return nil
}
