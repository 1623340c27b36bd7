package services

import (
	"errors"

	"roster-game-system/config"
	"roster-game-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrawService is the gacha engine: debit the draw cost, roll a tier, pick a
// template uniformly inside it, upsert the account's copy.
type DrawService struct {
	DB    *gorm.DB
	Rules config.Rules
	RNG   RandomSource
}

func NewDrawService(db *gorm.DB, rules config.Rules, rng RandomSource) *DrawService {
	return &DrawService{DB: db, Rules: rules, RNG: rng}
}

type DrawResult struct {
	Tier      string                   `json:"tier"`
	Template  models.CharacterTemplate `json:"template"`
	Copy      models.OwnedCopy         `json:"copy"`
	Duplicate bool                     `json:"duplicate"`
}

// Draw performs one paid draw for the account. The debit and the copy upsert
// commit together or not at all.
func (s *DrawService) Draw(accountID string) (*DrawResult, error) {
	unlock := lockAccounts(accountID)
	defer unlock()

	var res DrawResult
	err := runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		res = DrawResult{}

		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if account.Money < s.Rules.DrawCost {
			return ErrInsufficientFunds
		}

		tier := s.rollTier()
		var pool []models.CharacterTemplate
		if err := tx.Where("tier = ?", tier).Find(&pool).Error; err != nil {
			return err
		}
		if len(pool) == 0 {
			// Catalog misconfiguration, not a user error. The transaction
			// rolls back so the debit below never happens without a copy.
			return ErrEmptyTierPool
		}
		picked := pool[s.RNG.IntN(len(pool))]

		if err := tx.Model(&models.Account{}).Where("id = ?", accountID).
			Update("money", gorm.Expr("money - ?", s.Rules.DrawCost)).Error; err != nil {
			return err
		}

		var owned models.OwnedCopy
		err := tx.Where("account_id = ? AND template_id = ?", accountID, picked.ID).
			First(&owned).Error
		switch {
		case err == nil:
			owned.Count++
			if err := tx.Model(&owned).Update("count", owned.Count).Error; err != nil {
				return err
			}
			res.Duplicate = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			owned = models.OwnedCopy{
				ID:           uuid.NewString(),
				AccountID:    accountID,
				TemplateID:   picked.ID,
				Speed:        picked.Speed,
				Decisiveness: picked.Decisiveness,
				Power:        picked.Power,
				Defense:      picked.Defense,
				Stamina:      picked.Stamina,
				Count:        1,
				Force:        1,
			}
			if err := tx.Create(&owned).Error; err != nil {
				return err
			}
		default:
			return err
		}

		res.Tier = tier
		res.Template = picked
		res.Copy = owned
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// rollTier maps one uniform roll in [0,100) onto the cumulative tier bands.
func (s *DrawService) rollTier() string {
	roll := s.RNG.IntN(100)
	for _, band := range s.Rules.TierBands {
		if roll < band.Upper {
			return band.Tier
		}
	}
	return s.Rules.TierBands[len(s.Rules.TierBands)-1].Tier
}

// ListOwned returns the account's roster with template info preloaded.
func (s *DrawService) ListOwned(accountID string) ([]models.OwnedCopy, error) {
	var copies []models.OwnedCopy
	err := s.DB.Where("account_id = ?", accountID).
		Preload("Template").
		Order("created_at ASC").
		Find(&copies).Error
	return copies, err
}
