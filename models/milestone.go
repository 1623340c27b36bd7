package models

import "time"

// AccountMilestone marks one milestone as achieved for one account. The
// unique index makes granting idempotent: a second grant attempt for the
// same code is a no-op.
type AccountMilestone struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	AccountID string    `gorm:"uniqueIndex:idx_account_milestone;not null" json:"account_id"`
	Code      string    `gorm:"uniqueIndex:idx_account_milestone;type:varchar(32);not null" json:"code"`
	Reward    int       `json:"reward" gorm:"not null;default:0"`
	AwardedAt time.Time `json:"awarded_at" gorm:"autoCreateTime"`
}

// MilestoneDef is a static win-count threshold with its currency reward.
type MilestoneDef struct {
	Code   string
	Wins   int
	Reward int
}

// Predefined win milestones, checked in ascending order.
var MilestoneDefs = []MilestoneDef{
	{Code: "win_10", Wins: 10, Reward: 10000},
	{Code: "win_30", Wins: 30, Reward: 30000},
	{Code: "win_50", Wins: 50, Reward: 50000},
	{Code: "win_100", Wins: 100, Reward: 100000},
}
