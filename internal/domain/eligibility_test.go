package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestEvaluatePurchase(t *testing.T) {
	event := Event{
		ID:          "e1",
		OrganizerID: "organizer",
		IsActive:    true,
	}
	tier := TicketTier{
		ID:            "t1",
		EventID:       "e1",
		QuantityTotal: 100,
		QuantitySold:  10,
	}

	t.Run("eligible", func(t *testing.T) {
		r := EvaluatePurchase(event, tier, "buyer", 0, 2)
		assert.Equal(t, VerdictEligible, r.Verdict)
		assert.NoError(t, r.Err())
	})

	t.Run("organizer self purchase", func(t *testing.T) {
		r := EvaluatePurchase(event, tier, "organizer", 0, 1)
		assert.Equal(t, VerdictSelfPurchase, r.Verdict)
		assert.ErrorIs(t, r.Err(), ErrSelfPurchase)
	})

	t.Run("inactive event", func(t *testing.T) {
		inactive := event
		inactive.IsActive = false
		r := EvaluatePurchase(inactive, tier, "buyer", 0, 1)
		assert.Equal(t, VerdictInactive, r.Verdict)
	})

	t.Run("sold out", func(t *testing.T) {
		scarce := tier
		scarce.QuantitySold = 99
		r := EvaluatePurchase(event, scarce, "buyer", 0, 2)
		assert.Equal(t, VerdictSoldOut, r.Verdict)
		assert.ErrorIs(t, r.Err(), ErrSoldOut)
	})

	t.Run("exactly the remaining stock is allowed", func(t *testing.T) {
		scarce := tier
		scarce.QuantitySold = 99
		r := EvaluatePurchase(event, scarce, "buyer", 0, 1)
		assert.Equal(t, VerdictEligible, r.Verdict)
	})

	t.Run("per-user limit", func(t *testing.T) {
		limited := event
		limited.MaxTicketsPerUser = intPtr(4)

		r := EvaluatePurchase(limited, tier, "buyer", 3, 2)
		assert.Equal(t, VerdictLimitExceeded, r.Verdict)
		assert.Equal(t, 1, r.Remaining)
		assert.ErrorIs(t, r.Err(), ErrLimitExceeded)

		r = EvaluatePurchase(limited, tier, "buyer", 3, 1)
		assert.Equal(t, VerdictEligible, r.Verdict)
	})

	t.Run("limit already reached", func(t *testing.T) {
		limited := event
		limited.MaxTicketsPerUser = intPtr(2)

		r := EvaluatePurchase(limited, tier, "buyer", 5, 1)
		assert.Equal(t, VerdictLimitExceeded, r.Verdict)
		assert.Equal(t, 0, r.Remaining)
	})

	t.Run("nil limit means unlimited", func(t *testing.T) {
		r := EvaluatePurchase(event, tier, "buyer", 50, 10)
		assert.Equal(t, VerdictEligible, r.Verdict)
	})

	t.Run("self purchase wins over sold out", func(t *testing.T) {
		scarce := tier
		scarce.QuantitySold = 100
		r := EvaluatePurchase(event, scarce, "organizer", 0, 1)
		assert.Equal(t, VerdictSelfPurchase, r.Verdict)
	})
}

func TestComputePoints(t *testing.T) {
	testCases := []struct {
		name   string
		spend  string
		points int64
	}{
		{"two tickets at 25", "50", 500},
		{"fractional spend floors", "12.34", 123},
		{"sub-cent spend floors", "0.09", 0},
		{"zero spend", "0", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spend, err := decimal.NewFromString(tc.spend)
			assert.NoError(t, err)
			assert.Equal(t, tc.points, ComputePoints(spend))
		})
	}
}

func TestSettlementMemo(t *testing.T) {
	assert.Equal(t,
		"Eventra: Ticket purchase for event 0a1b2c3d",
		SettlementMemo("0a1b2c3d-4e5f-6789-abcd-ef0123456789"))
	assert.Equal(t,
		"Eventra: Ticket purchase for event ev1",
		SettlementMemo("ev1"))
}

func TestExplorerURLs(t *testing.T) {
	assert.Equal(t,
		"https://hashscan.io/testnet/transaction/0.0.1234@1700000000.000000001",
		ExplorerTransactionURL(NetworkTestnet, "0.0.1234@1700000000.000000001"))
	assert.Equal(t,
		"https://hashscan.io/mainnet/token/0.0.999",
		ExplorerTokenURL(NetworkMainnet, "0.0.999"))
}
