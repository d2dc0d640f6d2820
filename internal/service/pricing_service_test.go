package service_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"networth/internal/model"
	"networth/internal/quotes"
	"networth/internal/testutil"
)

// TestPricingService_TrackedSymbols tests resolution of the symbol universe.
//
// WHY: Refresh must quote exactly the union of primary-portfolio symbols
// and IRA holdings; nothing else is ever sent to a price source, and
// overlapping symbols appear once.
func TestPricingService_TrackedSymbols(t *testing.T) {
	t.Run("empty store yields empty set", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPricingService(t, db, testutil.NewStubSource(nil), quotes.NewCache())

		// Execute
		symbols, err := svc.TrackedSymbols()

		// Assert
		if err != nil {
			t.Fatalf("TrackedSymbols() returned unexpected error: %v", err)
		}
		if len(symbols) != 0 {
			t.Errorf("Expected no symbols, got %v", symbols)
		}
	})

	t.Run("unions portfolio and IRA holdings without duplicates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.InsertStock(t, db, "AAPL", 2)
		testutil.InsertStock(t, db, "VTI", 1)
		ira := testutil.NewRetirementAccount().WithType(model.RetirementIRARoth).Build(t, db)
		testutil.InsertHolding(t, db, ira.ID, "VTI", 4)
		testutil.InsertHolding(t, db, ira.ID, "VXUS", 3)

		svc := testutil.NewTestPricingService(t, db, testutil.NewStubSource(nil), quotes.NewCache())

		symbols, err := svc.TrackedSymbols()

		if err != nil {
			t.Fatalf("TrackedSymbols() returned unexpected error: %v", err)
		}

		want := []string{"AAPL", "VTI", "VXUS"}
		if len(symbols) != len(want) {
			t.Fatalf("Expected %v, got %v", want, symbols)
		}
		for i, symbol := range want {
			if symbols[i] != symbol {
				t.Errorf("Expected %v at index %d, got %v", symbol, i, symbols[i])
			}
		}
	})

	t.Run("holdings of non-IRA accounts are not tracked", func(t *testing.T) {
		// Guards the invariant that only IRA-typed accounts carry equity
		// holdings that need quotes. Rows for other types cannot be created
		// through the service, but the resolver must not rely on that.
		db := testutil.SetupTestDB(t)
		k401 := testutil.NewRetirementAccount().WithType(model.Retirement401kTraditional).Build(t, db)
		testutil.InsertHolding(t, db, k401.ID, "SNEAKY", 1)

		svc := testutil.NewTestPricingService(t, db, testutil.NewStubSource(nil), quotes.NewCache())

		symbols, err := svc.TrackedSymbols()

		if err != nil {
			t.Fatalf("TrackedSymbols() returned unexpected error: %v", err)
		}
		if len(symbols) != 0 {
			t.Errorf("Expected non-IRA holdings to be ignored, got %v", symbols)
		}
	})
}

// TestPricingService_RefreshAll tests the refresh cycle.
//
// WHY: A refresh must fetch only tracked symbols, write results into the
// mirror, and isolate per-symbol failures: one bad symbol keeps its prior
// cached quote while the rest of the batch succeeds.
func TestPricingService_RefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("quotes only tracked symbols", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		testutil.InsertStock(t, db, "AAPL", 2)
		testutil.InsertStock(t, db, "MSFT", 1)

		source := testutil.NewStubSource(map[string]float64{
			"AAPL": 150.25,
			"MSFT": 310.10,
			"GOOG": 999.99, // available but untracked
		})
		cache := quotes.NewCache()
		svc := testutil.NewTestPricingService(t, db, source, cache)

		// Execute
		err := svc.RefreshAll(ctx)

		// Assert
		if err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}

		queried := source.Queried()
		sort.Strings(queried)
		if len(queried) != 2 || queried[0] != "AAPL" || queried[1] != "MSFT" {
			t.Errorf("Expected exactly AAPL and MSFT to be queried, got %v", queried)
		}

		if price := cache.Price("AAPL"); price != 150.25 {
			t.Errorf("Expected cached AAPL quote 150.25, got %v", price)
		}
		if price := cache.Price("MSFT"); price != 310.10 {
			t.Errorf("Expected cached MSFT quote 310.10, got %v", price)
		}
	})

	t.Run("failed symbol keeps its previous quote", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.InsertStock(t, db, "AAPL", 2)
		testutil.InsertStock(t, db, "FLAKY", 1)

		source := testutil.NewStubSource(map[string]float64{"AAPL": 151.00}).
			WithFailure("FLAKY", errors.New("upstream timeout"))
		cache := quotes.NewCache()
		cache.SetPrice("FLAKY", 42.42) // stale but present
		svc := testutil.NewTestPricingService(t, db, source, cache)

		err := svc.RefreshAll(ctx)

		if err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}
		if price := cache.Price("FLAKY"); price != 42.42 {
			t.Errorf("Expected stale quote 42.42 to survive the failure, got %v", price)
		}
		if price := cache.Price("AAPL"); price != 151.00 {
			t.Errorf("Expected AAPL refresh to proceed despite FLAKY, got %v", price)
		}
	})

	t.Run("rebuilds the portfolio mirror from the store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.InsertStock(t, db, "AAPL", 2)

		cache := quotes.NewCache()
		svc := testutil.NewTestPricingService(t, db, testutil.NewStubSource(map[string]float64{"AAPL": 150}), cache)

		if err := svc.RefreshAll(ctx); err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}

		mirror := cache.Portfolio()
		if mirror["AAPL"] != 2 {
			t.Errorf("Expected mirror to hold AAPL with 2 shares, got %v", mirror)
		}
	})
}

// TestPricingService_RefreshSymbols tests explicit-set refresh.
//
// WHY: The on-demand refresh endpoint passes an explicit symbol list; the
// worker pool must quote each symbol exactly once.
func TestPricingService_RefreshSymbols(t *testing.T) {
	t.Run("quotes each symbol once", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewStubSource(map[string]float64{
			"AAPL": 150,
			"MSFT": 310,
			"VTI":  250,
		})
		cache := quotes.NewCache()
		svc := testutil.NewTestPricingService(t, db, source, cache)

		// Execute
		svc.RefreshSymbols(context.Background(), []string{"AAPL", "MSFT", "VTI"})

		// Assert
		queried := source.Queried()
		if len(queried) != 3 {
			t.Errorf("Expected 3 queries, got %d (%v)", len(queried), queried)
		}
		for _, symbol := range []string{"AAPL", "MSFT", "VTI"} {
			if cache.Price(symbol) == 0 {
				t.Errorf("Expected a cached quote for %s", symbol)
			}
		}
	})
}
