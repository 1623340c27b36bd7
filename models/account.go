package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is one player's identity plus their economy ledger (currency
// balance and ranking score). The balance must never go negative; every
// mutation happens inside a service-owned transaction.
type Account struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	LoginID  string `gorm:"uniqueIndex;not null" json:"login_id"`
	Password string `gorm:"not null" json:"-"`
	NickName string `gorm:"index;not null" json:"nick_name"`

	Money int `json:"money" gorm:"not null;default:10000;check:money >= 0"`
	Score int `json:"score" gorm:"not null;default:1000"`
	Wins  int `json:"wins" gorm:"not null;default:0"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
