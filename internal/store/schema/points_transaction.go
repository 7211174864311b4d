package schema

import (
	"time"
)

// PointsTransaction represents the points_transactions table - the
// append-only reward ledger. Rows are never updated or deleted.
type PointsTransaction struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the profile earning the points
	UserID string `gorm:"column:user_id;not null;index;type:uuid"`
	// Points is the delta applied to the cached balance
	Points int64 `gorm:"column:points;not null"`
	// Type is earned or bonus
	Type string `gorm:"column:type;not null;type:text"`
	// Description is a human-readable reason
	Description string `gorm:"column:description;type:text"`
	// EventID references the event the points relate to, when applicable
	EventID *string `gorm:"column:event_id;type:uuid"`
	// CreatedAt is the timestamp when this entry was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	User Profile `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the PointsTransaction model
func (PointsTransaction) TableName() string {
	return "points_transactions"
}
