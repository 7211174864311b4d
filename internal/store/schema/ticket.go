package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Ticket represents the tickets table - one row per sold ticket. Resale
// reassigns BuyerID on the existing row; a ticket row is never duplicated.
type Ticket struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// EventID references the event the ticket admits to
	EventID string `gorm:"column:event_id;not null;index;type:uuid"`
	// TierID references the tier the ticket was sold under
	TierID string `gorm:"column:tier_id;not null;type:uuid"`
	// BuyerID references the current owner's profile
	BuyerID string `gorm:"column:buyer_id;not null;index;type:uuid"`
	// TransactionHash is the ledger settlement transaction id shared by the batch
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
	// PaymentReference is the gateway reference shared by the batch; it is the idempotency key for webhook replays
	PaymentReference *string `gorm:"column:payment_reference;index;type:text"`
	// PurchasePrice snapshots the tier price at purchase time
	PurchasePrice decimal.Decimal `gorm:"column:purchase_price;not null;type:numeric(12,2)"`
	// NFTTokenID is the synthetic per-ticket token identifier
	NFTTokenID string `gorm:"column:nft_token_id;not null;uniqueIndex;type:text"`
	// Metadata carries blockchain, network, explorerUrl, batchNumber, totalInBatch and paymentReference
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// PurchaseDate is when the batch was materialized
	PurchaseDate time.Time `gorm:"column:purchase_date;not null;default:now();type:timestamptz"`
	// CreatedAt is the timestamp when this ticket was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this ticket was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Event Event      `gorm:"foreignKey:EventID"`
	Tier  TicketTier `gorm:"foreignKey:TierID"`
	Buyer Profile    `gorm:"foreignKey:BuyerID"`
}

// TableName specifies the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}
