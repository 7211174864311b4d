package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHbarAmount(t *testing.T) {
	testCases := []struct {
		name  string
		price string
		hbar  int64
	}{
		{"free ticket still settles one hbar", "0", 1},
		{"small price rounds up to one", "5", 1},
		{"exact multiple", "50", 5},
		{"rounds up", "51", 6},
		{"fractional price", "10.01", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.hbar, hbarAmount(decimal.RequireFromString(tc.price)))
		})
	}
}

func TestMirrorTransactionID(t *testing.T) {
	assert.Equal(t,
		"0.0.1234-1700000000-000000001",
		mirrorTransactionID("0.0.1234@1700000000.000000001"))

	// Already in mirror form, left as-is.
	assert.Equal(t,
		"0.0.1234-1700000000-000000001",
		mirrorTransactionID("0.0.1234-1700000000-000000001"))
}
