package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Network is a Hedera network name as it appears in explorer URLs.
type Network string

const (
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
)

// ExplorerTransactionURL returns the hashscan.io URL for a transaction.
func ExplorerTransactionURL(network Network, transactionID string) string {
	return fmt.Sprintf("https://hashscan.io/%s/transaction/%s", network, transactionID)
}

// ExplorerTokenURL returns the hashscan.io URL for a token.
func ExplorerTokenURL(network Network, tokenID string) string {
	return fmt.Sprintf("https://hashscan.io/%s/token/%s", network, tokenID)
}

const (
	// PointsMultiplier converts spend to reward points.
	PointsMultiplier = 10

	// FirstPurchaseBonus is granted once, on a buyer's first ticket purchase.
	FirstPurchaseBonus = 50

	// CertificateMetadataMaxBytes is the on-ledger cap for NFT metadata.
	CertificateMetadataMaxBytes = 100

	// CertificateCollectionMaxSupply bounds certificates per event collection.
	CertificateCollectionMaxSupply = 1000

	// CertificateSymbol is the token symbol for certificate collections.
	CertificateSymbol = "CERT"
)

// ListingStatus is the lifecycle state of a resale listing.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// CertificateRole describes the capacity in which a certificate is issued.
type CertificateRole string

const (
	CertificateRoleAttendee  CertificateRole = "attendee"
	CertificateRoleSpeaker   CertificateRole = "speaker"
	CertificateRoleVolunteer CertificateRole = "volunteer"
	CertificateRoleOrganizer CertificateRole = "organizer"
)

// ValidCertificateRole reports whether role is one of the known roles.
func ValidCertificateRole(role CertificateRole) bool {
	switch role {
	case CertificateRoleAttendee, CertificateRoleSpeaker,
		CertificateRoleVolunteer, CertificateRoleOrganizer:
		return true
	}
	return false
}

// PointsTransactionType distinguishes ledger entries.
type PointsTransactionType string

const (
	PointsTypeEarned PointsTransactionType = "earned"
	PointsTypeBonus  PointsTransactionType = "bonus"
)

// Event is the read model handed to the eligibility check and services.
type Event struct {
	ID                 string
	OrganizerID        string
	Title              string
	Description        string
	EventDate          time.Time
	Location           string
	ImageURL           string
	IsPaid             bool
	IsActive           bool
	MaxTicketsPerUser  *int
	CertificateTokenID *string
}

// TicketTier is the read model for a priced admission tier.
type TicketTier struct {
	ID            string
	EventID       string
	TierName      string
	Price         decimal.Decimal
	QuantityTotal int
	QuantitySold  int
	Benefits      []string
}

// Remaining returns the number of unsold tickets in the tier.
func (t TicketTier) Remaining() int {
	return t.QuantityTotal - t.QuantitySold
}

// TicketMetadata is the JSONB payload stamped on each ticket at purchase.
type TicketMetadata struct {
	Blockchain       string `json:"blockchain"`
	Network          string `json:"network"`
	ExplorerURL      string `json:"explorerUrl"`
	BatchNumber      int    `json:"batchNumber"`
	TotalInBatch     int    `json:"totalInBatch"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

// SettlementMemo is the memo attached to the settlement transfer for an event.
func SettlementMemo(eventID string) string {
	short := eventID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Eventra: Ticket purchase for event %s", short)
}
