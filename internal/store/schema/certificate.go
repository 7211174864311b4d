package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Certificate represents the certificates table - one minted NFT
// certificate per (event, recipient) pair
type Certificate struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// EventID references the event the certificate attests
	EventID string `gorm:"column:event_id;not null;uniqueIndex:idx_certificates_event_recipient,priority:1;type:uuid"`
	// RecipientID references the profile the certificate was issued to
	RecipientID string `gorm:"column:recipient_id;not null;uniqueIndex:idx_certificates_event_recipient,priority:2;type:uuid"`
	// NFTTokenID is the ledger token id of the event's certificate collection
	NFTTokenID string `gorm:"column:nft_token_id;not null;type:text"`
	// NFTSerialNumber is the serial minted for this certificate within the collection
	NFTSerialNumber int64 `gorm:"column:nft_serial_number;not null"`
	// Role is the capacity attested: attendee, speaker, volunteer or organizer
	Role string `gorm:"column:role;not null;type:text"`
	// Metadata is the canonical JSON that was minted on-ledger
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// IssuedAt is when the certificate was minted
	IssuedAt time.Time `gorm:"column:issued_at;not null;default:now();type:timestamptz"`

	// Associations
	Event     Event   `gorm:"foreignKey:EventID"`
	Recipient Profile `gorm:"foreignKey:RecipientID"`
}

// TableName specifies the table name for the Certificate model
func (Certificate) TableName() string {
	return "certificates"
}
