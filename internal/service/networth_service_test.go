package service_test

import (
	"testing"

	"networth/internal/model"
	"networth/internal/quotes"
	"networth/internal/testutil"
)

// TestNetWorthService_NetWorth tests the aggregation engine end to end.
//
// WHY: Net worth is the single number the whole system exists to produce.
// This pins the component sum (cash + equities + treasuries + retirement)
// against hand-computed fixtures, including the contract that an empty
// store yields 0.0 and that missing quotes degrade to zero instead of
// erroring.
func TestNetWorthService_NetWorth(t *testing.T) {
	t.Run("empty store yields zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestNetWorthService(t, db, quotes.NewCache())

		// Execute
		total := svc.NetWorth()

		// Assert
		if total != 0.0 {
			t.Errorf("Expected 0.0 for empty store, got %v", total)
		}
	})

	t.Run("sums all four components", func(t *testing.T) {
		// Setup: 500 cash + 2 AAPL @ 150 + 10000 401k balance
		// + 4 VTI @ 250 in an IRA = 11800.00
		db := testutil.SetupTestDB(t)
		cache := quotes.NewCache()
		cache.SetPrice("AAPL", 150)
		cache.SetPrice("VTI", 250)

		testutil.InsertCash(t, db, "Checking", 500)
		testutil.InsertStock(t, db, "AAPL", 2)
		testutil.NewRetirementAccount().
			WithName("401k").
			WithType(model.Retirement401kTraditional).
			WithBalance(10000).
			Build(t, db)
		ira := testutil.NewRetirementAccount().
			WithName("Roth IRA").
			WithType(model.RetirementIRARoth).
			Build(t, db)
		testutil.InsertHolding(t, db, ira.ID, "VTI", 4)

		svc := testutil.NewTestNetWorthService(t, db, cache)

		// Execute
		breakdown := svc.Breakdown()

		// Assert
		if breakdown.Cash != 500.00 {
			t.Errorf("Expected cash 500.00, got %v", breakdown.Cash)
		}
		if breakdown.Equities != 300.00 {
			t.Errorf("Expected equities 300.00, got %v", breakdown.Equities)
		}
		if breakdown.Retirement != 11000.00 {
			t.Errorf("Expected retirement 11000.00, got %v", breakdown.Retirement)
		}
		if breakdown.Total != 11800.00 {
			t.Errorf("Expected total 11800.00, got %v", breakdown.Total)
		}
	})

	t.Run("includes treasury accrual", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewTreasury().
			WithName("T-Bill").
			WithFaceValue(1000).
			WithRate(0).
			PurchasedDaysAgo(100).
			Build(t, db)

		svc := testutil.NewTestNetWorthService(t, db, quotes.NewCache())

		breakdown := svc.Breakdown()

		// Zero rate pins the accrued value at face regardless of today's date.
		if breakdown.Treasuries != 1000.00 {
			t.Errorf("Expected treasuries 1000.00, got %v", breakdown.Treasuries)
		}
		if breakdown.Total != 1000.00 {
			t.Errorf("Expected total 1000.00, got %v", breakdown.Total)
		}
	})

	t.Run("symbol without a quote contributes zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		cache := quotes.NewCache()
		cache.SetPrice("AAPL", 150)

		testutil.InsertStock(t, db, "AAPL", 2)
		testutil.InsertStock(t, db, "UNQUOTED", 50)

		svc := testutil.NewTestNetWorthService(t, db, cache)

		total := svc.NetWorth()

		if total != 300.00 {
			t.Errorf("Expected 300.00 with unquoted symbol at zero, got %v", total)
		}
	})

	t.Run("cash sums across multiple accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.InsertCash(t, db, "SWVXX", 1000.50)
		testutil.InsertCash(t, db, "SPAXX", 2000.25)
		testutil.InsertCash(t, db, "Checking", 499.25)

		svc := testutil.NewTestNetWorthService(t, db, quotes.NewCache())

		total := svc.NetWorth()

		if total != 3500.00 {
			t.Errorf("Expected 3500.00, got %v", total)
		}
	})
}

// TestNetWorthService_Breakdown_Rounding tests two-decimal rounding.
//
// WHY: Fractional shares times market prices produce sub-cent amounts; the
// reported figures are money and must be rounded per component and in
// total.
func TestNetWorthService_Breakdown_Rounding(t *testing.T) {
	t.Run("rounds equities to cents", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		cache := quotes.NewCache()
		cache.SetPrice("VXUS", 73.09)
		testutil.InsertStock(t, db, "VXUS", 1.5)

		svc := testutil.NewTestNetWorthService(t, db, cache)

		// Execute
		breakdown := svc.Breakdown()

		// Assert: 1.5 * 73.09 = 109.635 -> 109.64
		if breakdown.Equities != 109.64 {
			t.Errorf("Expected equities 109.64, got %v", breakdown.Equities)
		}
	})
}
