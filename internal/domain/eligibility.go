package domain

// PurchaseVerdict classifies the outcome of a purchase eligibility check.
type PurchaseVerdict int

const (
	// VerdictEligible means the purchase may proceed.
	VerdictEligible PurchaseVerdict = iota
	// VerdictSelfPurchase means the buyer organizes the event.
	VerdictSelfPurchase
	// VerdictSoldOut means the tier has fewer unsold tickets than requested.
	VerdictSoldOut
	// VerdictLimitExceeded means the purchase would pass the per-user cap.
	VerdictLimitExceeded
	// VerdictInactive means the event is not open for sales.
	VerdictInactive
)

// EligibilityResult carries the verdict plus the remaining allowance when a
// per-user limit rejected the purchase.
type EligibilityResult struct {
	Verdict   PurchaseVerdict
	Remaining int
}

// Err maps a verdict to its domain sentinel, or nil when eligible.
func (r EligibilityResult) Err() error {
	switch r.Verdict {
	case VerdictSelfPurchase:
		return ErrSelfPurchase
	case VerdictSoldOut:
		return ErrSoldOut
	case VerdictLimitExceeded:
		return ErrLimitExceeded
	case VerdictInactive:
		return ErrEventNotFound
	}
	return nil
}

// EvaluatePurchase decides whether buyerID may buy `requested` tickets from
// the tier. alreadyOwned is the buyer's current ticket count for the event.
// A nil MaxTicketsPerUser means unlimited. The inventory check here is an
// early rejection only; the store enforces it again atomically at write time.
func EvaluatePurchase(event Event, tier TicketTier, buyerID string, alreadyOwned, requested int) EligibilityResult {
	if !event.IsActive {
		return EligibilityResult{Verdict: VerdictInactive}
	}

	if event.OrganizerID == buyerID {
		return EligibilityResult{Verdict: VerdictSelfPurchase}
	}

	if tier.Remaining() < requested {
		return EligibilityResult{Verdict: VerdictSoldOut}
	}

	if event.MaxTicketsPerUser != nil {
		remaining := *event.MaxTicketsPerUser - alreadyOwned
		if remaining < 0 {
			remaining = 0
		}
		if requested > remaining {
			return EligibilityResult{
				Verdict:   VerdictLimitExceeded,
				Remaining: remaining,
			}
		}
	}

	return EligibilityResult{Verdict: VerdictEligible}
}
