package domain

import (
	"github.com/shopspring/decimal"
)

// ComputePoints returns the reward points for a spend: floor(spend × 10).
func ComputePoints(totalSpent decimal.Decimal) int64 {
	return totalSpent.Mul(decimal.NewFromInt(PointsMultiplier)).Floor().IntPart()
}
