package models

// Team groups exactly 3 owned copies of one account. Matchmaking rejects any
// team that does not hold exactly 3 members.
type Team struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	AccountID string `gorm:"index;not null" json:"account_id"`
	Name      string `json:"name"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`

	Timestamps
}

// TeamMember assigns one owned copy to a team. AccountID is denormalized from
// the team so matchmaking can count assigned players per account in one scan.
type TeamMember struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	TeamID    string `gorm:"index;not null" json:"team_id"`
	AccountID string `gorm:"index;not null" json:"account_id"`
	CopyID    string `gorm:"index;not null" json:"copy_id"`

	Copy OwnedCopy `gorm:"foreignKey:CopyID" json:"copy,omitempty"`

	Timestamps
}
