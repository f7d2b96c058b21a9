package models

import (
	"time"
)

// KVRecord backs the key-value persistence store. Each namespaced key holds
// one JSON document (members list, transaction list, pending events, ...).
type KVRecord struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
