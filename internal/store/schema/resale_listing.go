package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResaleListing represents the resale_listings table - at most one active
// listing may exist per ticket (partial unique index on status = 'active')
type ResaleListing struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// TicketID references the ticket being resold
	TicketID string `gorm:"column:ticket_id;not null;index;type:uuid"`
	// SellerID references the profile that listed the ticket
	SellerID string `gorm:"column:seller_id;not null;index;type:uuid"`
	// OriginalPrice is the price the seller paid for the ticket
	OriginalPrice decimal.Decimal `gorm:"column:original_price;not null;type:numeric(12,2)"`
	// ResalePrice is the asking price
	ResalePrice decimal.Decimal `gorm:"column:resale_price;not null;type:numeric(12,2)"`
	// Status is active, sold or cancelled
	Status string `gorm:"column:status;not null;default:'active';type:text"`
	// SoldAt is when the listing was bought (nil while active or cancelled)
	SoldAt *time.Time `gorm:"column:sold_at;type:timestamptz"`
	// CreatedAt is the timestamp when this listing was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this listing was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Ticket Ticket  `gorm:"foreignKey:TicketID"`
	Seller Profile `gorm:"foreignKey:SellerID"`
}

// TableName specifies the table name for the ResaleListing model
func (ResaleListing) TableName() string {
	return "resale_listings"
}
