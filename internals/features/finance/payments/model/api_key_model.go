// file: internals/features/finance/payments/model/api_key_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Server-to-server keys for the generation endpoints. Only the bcrypt
// hash is stored; the plaintext is shown once at creation.
type ApiKeyModel struct {
	ApiKeyID         uuid.UUID  `gorm:"column:api_key_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"api_key_id"`
	ApiKeyName       string     `gorm:"column:api_key_name;type:varchar(100);not null" json:"api_key_name"`
	ApiKeyPrefix     string     `gorm:"column:api_key_prefix;type:varchar(12);not null;uniqueIndex" json:"api_key_prefix"`
	ApiKeyHash       string     `gorm:"column:api_key_hash;type:varchar(100);not null" json:"-"`
	ApiKeyIsActive   bool       `gorm:"column:api_key_is_active;not null;default:true" json:"api_key_is_active"`
	ApiKeyLastUsedAt *time.Time `gorm:"column:api_key_last_used_at" json:"api_key_last_used_at,omitempty"`
	ApiKeyCreatedAt  time.Time  `gorm:"column:api_key_created_at;autoCreateTime" json:"api_key_created_at"`
}

func (ApiKeyModel) TableName() string {
	return "api_keys"
}
