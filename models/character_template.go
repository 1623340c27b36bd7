package models

// CharacterTemplate is an immutable catalog entry. The draw engine reads the
// catalog by tier; reinforcement reads it back to restore base stats after a
// break. The game engines never write this table.
type CharacterTemplate struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"index;not null" json:"name"`

	Speed        int `json:"speed" gorm:"not null;default:0"`
	Decisiveness int `json:"decisiveness" gorm:"not null;default:0"`
	Power        int `json:"power" gorm:"not null;default:0"`
	Defense      int `json:"defense" gorm:"not null;default:0"`
	Stamina      int `json:"stamina" gorm:"not null;default:0"`

	Tier string `json:"tier" gorm:"type:varchar(1);index;not null;check:tier IN ('S','A','B','C')"`

	Timestamps
}
