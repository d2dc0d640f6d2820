package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"networth/internal/apperrors"
	"networth/internal/model"
	"networth/internal/testutil"
)

// TestTreasuryService_CurrentValue tests the simple-interest accrual formula.
//
// WHY: Treasury valuation is pure arithmetic that the aggregation engine
// depends on. This pins the exact formula (face * (1 + rate * days/365),
// rounded to cents) against hand-computed values, including the edge cases
// of zero rate and a purchase date in the future.
func TestTreasuryService_CurrentValue(t *testing.T) {
	purchase := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	newTreasury := func(face, rate float64) model.Treasury {
		return model.Treasury{
			Name:         "T-Bill",
			Type:         "T-Bill",
			FaceValue:    face,
			InterestRate: rate,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(1, 0, 0),
		}
	}

	clockAt := func(now time.Time) func() time.Time {
		return func() time.Time { return now }
	}

	t.Run("accrues one full year of simple interest", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.AddDate(0, 0, 365)))

		// Execute
		value := svc.CurrentValue(newTreasury(1000, 0.04))

		// Assert
		if value != 1040.00 {
			t.Errorf("Expected 1040.00 after 365 days at 4%%, got %v", value)
		}
	})

	t.Run("zero rate stays at face value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.AddDate(0, 0, 200)))

		value := svc.CurrentValue(newTreasury(5000, 0))

		if value != 5000.00 {
			t.Errorf("Expected face value 5000.00 at zero rate, got %v", value)
		}
	})

	t.Run("value on purchase day equals face value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase))

		value := svc.CurrentValue(newTreasury(1000, 0.05))

		if value != 1000.00 {
			t.Errorf("Expected 1000.00 on purchase day, got %v", value)
		}
	})

	t.Run("value grows monotonically over time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		treasury := newTreasury(1000, 0.04)

		previous := 0.0
		for _, days := range []int{0, 30, 90, 365, 730} {
			svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.AddDate(0, 0, days)))
			value := svc.CurrentValue(treasury)
			if value < previous {
				t.Errorf("Value decreased at day %d: %v < %v", days, value, previous)
			}
			previous = value
		}
	})

	t.Run("future purchase date yields value below face", func(t *testing.T) {
		// WHY: negative days_held is legal, not an error.
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.AddDate(0, 0, -365)))

		value := svc.CurrentValue(newTreasury(1000, 0.04))

		if value != 960.00 {
			t.Errorf("Expected 960.00 one year before purchase, got %v", value)
		}
	})

	t.Run("fractional days floor toward negative infinity", func(t *testing.T) {
		// WHY: evaluating 36 hours before purchase must count -2 days
		// held, not truncate to -1; the accrual window floors rather
		// than rounding toward zero.
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.Add(-36 * time.Hour)))

		// 1000 * (1 + 0.04 * -2/365) = 999.7808... -> 999.78
		value := svc.CurrentValue(newTreasury(1000, 0.04))

		if value != 999.78 {
			t.Errorf("Expected 999.78 at 36 hours before purchase, got %v", value)
		}
	})

	t.Run("partial day held does not accrue", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.Add(12 * time.Hour)))

		value := svc.CurrentValue(newTreasury(1000, 0.04))

		if value != 1000.00 {
			t.Errorf("Expected face value 1000.00 at half a day held, got %v", value)
		}
	})

	t.Run("result is rounded to two decimal places", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(clockAt(purchase.AddDate(0, 0, 100)))

		// 1000 * (1 + 0.0437 * 100/365) = 1011.97260... -> 1011.97
		value := svc.CurrentValue(newTreasury(1000, 0.0437))

		if value != 1011.97 {
			t.Errorf("Expected 1011.97, got %v", value)
		}
	})
}

// TestTreasuryService_Add tests treasury creation and its validation.
//
// WHY: Treasuries are keyed by name; a duplicate name must be rejected with
// the sentinel the API layer maps to 409, and invalid inputs must never
// reach the store.
func TestTreasuryService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid treasury", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)

		purchase := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		treasury := model.Treasury{
			Name:         "T-Note 2027",
			Type:         "T-Note",
			FaceValue:    2000,
			InterestRate: 0.045,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(2, 0, 0),
		}

		// Execute
		err := svc.Add(ctx, treasury)

		// Assert
		if err != nil {
			t.Fatalf("Add() returned unexpected error: %v", err)
		}

		valuations, err := svc.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(valuations) != 1 {
			t.Fatalf("Expected 1 treasury, got %d", len(valuations))
		}
		if valuations[0].Name != "T-Note 2027" {
			t.Errorf("Expected name 'T-Note 2027', got %q", valuations[0].Name)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)
		testutil.NewTreasury().WithName("T-Bill Q3").Build(t, db)

		purchase := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		err := svc.Add(ctx, model.Treasury{
			Name:         "T-Bill Q3",
			Type:         "T-Bill",
			FaceValue:    1000,
			InterestRate: 0.04,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(1, 0, 0),
		})

		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Errorf("Expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("rejects non-positive face value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)

		purchase := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		err := svc.Add(ctx, model.Treasury{
			Name:         "Broken",
			Type:         "T-Bill",
			FaceValue:    0,
			InterestRate: 0.04,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(1, 0, 0),
		})

		if !errors.Is(err, apperrors.ErrInvalidFaceValue) {
			t.Errorf("Expected ErrInvalidFaceValue, got %v", err)
		}
	})

	t.Run("rejects negative interest rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)

		purchase := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		err := svc.Add(ctx, model.Treasury{
			Name:         "Broken",
			Type:         "T-Bill",
			FaceValue:    1000,
			InterestRate: -0.01,
			PurchaseDate: purchase,
			MaturityDate: purchase.AddDate(1, 0, 0),
		})

		if !errors.Is(err, apperrors.ErrInvalidInterestRate) {
			t.Errorf("Expected ErrInvalidInterestRate, got %v", err)
		}
	})
}

// TestTreasuryService_Remove tests treasury deletion.
//
// WHY: Removal must actually delete the row and must surface the not-found
// sentinel for unknown names so the API can return 404.
func TestTreasuryService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing treasury", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)
		testutil.NewTreasury().WithName("Short Bill").Build(t, db)

		// Execute
		err := svc.Remove(ctx, "Short Bill")

		// Assert
		if err != nil {
			t.Fatalf("Remove() returned unexpected error: %v", err)
		}

		valuations, err := svc.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(valuations) != 0 {
			t.Errorf("Expected no treasuries after removal, got %d", len(valuations))
		}
	})

	t.Run("returns not found for unknown name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)

		err := svc.Remove(ctx, "does-not-exist")

		if !errors.Is(err, apperrors.ErrTreasuryNotFound) {
			t.Errorf("Expected ErrTreasuryNotFound, got %v", err)
		}
	})
}

// TestTreasuryService_TotalValue tests summing across treasuries.
//
// WHY: The aggregation engine consumes this sum directly; an empty table
// must yield 0.0 rather than an error.
func TestTreasuryService_TotalValue(t *testing.T) {
	t.Run("empty table yields zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTreasuryService(t, db)

		// Execute
		total, err := svc.TotalValue()

		// Assert
		if err != nil {
			t.Fatalf("TotalValue() returned unexpected error: %v", err)
		}
		if total != 0.0 {
			t.Errorf("Expected 0.0 for empty table, got %v", total)
		}
	})

	t.Run("sums accrued values across treasuries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		purchase := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		evalAt := purchase.AddDate(0, 0, 365)
		svc := testutil.NewTestTreasuryService(t, db).WithClock(func() time.Time { return evalAt })

		insert := func(name string, face, rate float64) {
			t.Helper()
			_, err := db.Exec(
				`INSERT INTO treasury (name, type, face_value, interest_rate, purchase_date, maturity_date)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				name, "T-Bill", face, rate,
				purchase.Format("2006-01-02"),
				purchase.AddDate(1, 0, 0).Format("2006-01-02"),
			)
			if err != nil {
				t.Fatalf("Failed to insert treasury: %v", err)
			}
		}

		// 1000 @ 4% for 365 days = 1040.00; 2000 @ 5% for 365 days = 2100.00
		insert("A", 1000, 0.04)
		insert("B", 2000, 0.05)

		total, err := svc.TotalValue()

		if err != nil {
			t.Fatalf("TotalValue() returned unexpected error: %v", err)
		}
		if total != 3140.00 {
			t.Errorf("Expected 3140.00, got %v", total)
		}
	})
}
