package messaging

import (
	"context"
	"time"
)

// Publisher defines the interface for publishing domain events to the
// message broker. Publishing is best-effort; callers log failures and
// never fail the request on them.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTicketPurchased announces a materialized ticket batch
	PublishTicketPurchased(ctx context.Context, event TicketPurchased) error
	// PublishCertificateMinted announces a minted certificate
	PublishCertificateMinted(ctx context.Context, event CertificateMinted) error
	// Close closes the connection
	Close()
}

// TicketPurchased is emitted once per materialized purchase batch.
type TicketPurchased struct {
	EventID          string    `json:"event_id"`
	BuyerID          string    `json:"buyer_id"`
	TierID           string    `json:"tier_id"`
	Quantity         int       `json:"quantity"`
	TransactionID    string    `json:"transaction_id"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	PurchasedAt      time.Time `json:"purchased_at"`
}

// CertificateMinted is emitted once per minted certificate.
type CertificateMinted struct {
	EventID      string    `json:"event_id"`
	RecipientID  string    `json:"recipient_id"`
	TokenID      string    `json:"token_id"`
	SerialNumber int64     `json:"serial_number"`
	Role         string    `json:"role"`
	MintedAt     time.Time `json:"minted_at"`
}
