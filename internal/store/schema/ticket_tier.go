package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TicketTier represents the ticket_tiers table - a priced admission level within an event
type TicketTier struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// EventID references the owning event
	EventID string `gorm:"column:event_id;not null;index;type:uuid"`
	// TierName is the display name (General, VIP, ...)
	TierName string `gorm:"column:tier_name;not null;type:text"`
	// Price is the unit price in the event's currency
	Price decimal.Decimal `gorm:"column:price;not null;type:numeric(12,2)"`
	// QuantityTotal is the number of tickets the tier can ever sell
	QuantityTotal int `gorm:"column:quantity_total;not null"`
	// QuantitySold is incremented only through the conditional inventory update, so it never exceeds QuantityTotal
	QuantitySold int `gorm:"column:quantity_sold;not null;default:0"`
	// Benefits is a JSON array of perk strings shown to buyers
	Benefits datatypes.JSON `gorm:"column:benefits;type:jsonb"`
	// CreatedAt is the timestamp when this tier was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this tier was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the TicketTier model
func (TicketTier) TableName() string {
	return "ticket_tiers"
}
