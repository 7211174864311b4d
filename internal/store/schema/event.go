package schema

import (
	"time"
)

// Event represents the events table - one row per published event, never hard-deleted
type Event struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// OrganizerID references the profile that created the event
	OrganizerID string `gorm:"column:organizer_id;not null;index;type:uuid"`
	// Title is the public event name
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the long-form event description
	Description string `gorm:"column:description;type:text"`
	// EventDate is when the event takes place
	EventDate time.Time `gorm:"column:event_date;not null;index;type:timestamptz"`
	// Location is the venue or online location
	Location string `gorm:"column:location;type:text"`
	// ImageURL is the cover image
	ImageURL string `gorm:"column:image_url;type:text"`
	// IsPaid is true when any tier carries a price greater than zero
	IsPaid bool `gorm:"column:is_paid;not null;default:false"`
	// IsActive gates ticket sales; deactivated events stay queryable
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// MaxTicketsPerUser caps tickets per buyer for the whole event (nil means unlimited)
	MaxTicketsPerUser *int `gorm:"column:max_tickets_per_user"`
	// CertificateTokenID is the ledger token id of the event's certificate collection once created
	CertificateTokenID *string `gorm:"column:certificate_token_id;type:text"`
	// CreatedAt is the timestamp when this event was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this event was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Organizer Profile      `gorm:"foreignKey:OrganizerID"`
	Tiers     []TicketTier `gorm:"foreignKey:EventID"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
