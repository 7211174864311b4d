package schema

import (
	"time"
)

// Profile represents the profiles table - one row per registered user
type Profile struct {
	// ID is the user's identity, shared with the auth provider
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Email is the user's contact address for transactional mail
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// FullName is the user's display name
	FullName string `gorm:"column:full_name;not null;type:text"`
	// HederaAccountID is the user's optional ledger account (0.0.x form)
	HederaAccountID *string `gorm:"column:hedera_account_id;type:text"`
	// Points is the cached reward balance; the authoritative history lives in points_transactions
	Points int64 `gorm:"column:points;not null;default:0"`
	// FirstPurchaseAt marks when the user completed their first ticket purchase (nil until then)
	FirstPurchaseAt *time.Time `gorm:"column:first_purchase_at;type:timestamptz"`
	// CreatedAt is the timestamp when this profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
