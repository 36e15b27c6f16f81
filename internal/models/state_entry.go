package models

import "time"

// StateEntry is one persisted key-value pair.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;column:state_key"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StateEntry) TableName() string {
	return "kv_entries"
}
