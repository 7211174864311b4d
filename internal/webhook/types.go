package webhook

import (
	"encoding/json"
)

// Event type constants
const (
	// EventTypeChargeSuccess is the only Paystack event that materializes
	// tickets; every other type is acknowledged and ignored
	EventTypeChargeSuccess = "charge.success"

	// SignatureHeader carries the hex HMAC-SHA512 of the raw request body
	SignatureHeader = "x-paystack-signature"
)

// PaystackEvent is the envelope Paystack posts to the webhook endpoint
type PaystackEvent struct {
	// Event is the event type (e.g. "charge.success")
	Event string `json:"event"`
	// Data is the event-specific payload
	Data ChargeData `json:"data"`
}

// ChargeData is the charge.success payload
type ChargeData struct {
	// Reference is the gateway payment reference; it is the idempotency key
	Reference string `json:"reference"`
	// Amount is the charged amount in currency subunits
	Amount int64 `json:"amount"`
	// Status is the gateway charge status
	Status string `json:"status"`
	// PaidAt is the gateway timestamp of the charge
	PaidAt string `json:"paid_at"`
	// Metadata carries the purchase intent stamped at initialization
	Metadata ChargeMetadata `json:"metadata"`
}

// ChargeMetadata is the purchase intent attached when the payment was
// initialized. Quantity arrives as a JSON number or string depending on the
// client, hence json.Number.
type ChargeMetadata struct {
	EventID  string      `json:"eventId"`
	TierID   string      `json:"tierId"`
	Quantity json.Number `json:"quantity"`
	UserID   string      `json:"userId"`
}
