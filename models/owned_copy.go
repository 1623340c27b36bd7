package models

// OwnedCopy is one account's stack of copies of a single template. Stats start
// as a snapshot of the template and diverge upward through reinforcement; a
// break resets them back to the template's base values. There is at most one
// row per (account, template) pair; duplicate draws increment Count instead.
type OwnedCopy struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	AccountID  string `gorm:"uniqueIndex:idx_owned_account_template;not null" json:"account_id"`
	TemplateID string `gorm:"uniqueIndex:idx_owned_account_template;not null" json:"template_id"`

	Template CharacterTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`

	Speed        int `json:"speed" gorm:"not null;default:0"`
	Decisiveness int `json:"decisiveness" gorm:"not null;default:0"`
	Power        int `json:"power" gorm:"not null;default:0"`
	Defense      int `json:"defense" gorm:"not null;default:0"`
	Stamina      int `json:"stamina" gorm:"not null;default:0"`

	Count int `json:"count" gorm:"not null;default:1;check:count >= 1"`
	Force int `json:"force" gorm:"not null;default:1;check:force BETWEEN 1 AND 10"`

	Timestamps
}

// StatTotal is the copy's contribution to team power.
func (c *OwnedCopy) StatTotal() int {
	return c.Speed + c.Decisiveness + c.Power + c.Defense + c.Stamina
}
