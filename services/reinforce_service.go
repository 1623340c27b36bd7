package services

import (
	"errors"

	"roster-game-system/config"
	"roster-game-system/models"

	"gorm.io/gorm"
)

// ReinforceOutcome labels the three possible results of one attempt.
type ReinforceOutcome string

const (
	ReinforceSucceeded ReinforceOutcome = "succeeded"
	ReinforceFailed    ReinforceOutcome = "failed"
	ReinforceBroken    ReinforceOutcome = "broken"
)

// ReinforceService attempts to raise one owned copy's force level, paying
// with currency or a sacrificed duplicate, with odds fixed per current level.
type ReinforceService struct {
	DB    *gorm.DB
	Rules config.Rules
	RNG   RandomSource
}

func NewReinforceService(db *gorm.DB, rules config.Rules, rng RandomSource) *ReinforceService {
	return &ReinforceService{DB: db, Rules: rules, RNG: rng}
}

type ReinforceResult struct {
	Outcome ReinforceOutcome  `json:"outcome"`
	Copy    *models.OwnedCopy `json:"copy,omitempty"` // nil when the copy was destroyed
	Deleted bool              `json:"deleted"`
}

// Reinforce runs one attempt on the account's copy. Exactly one of the three
// outcomes happens; the break roll is checked before the success roll, so a
// break wins even when the success roll would have passed.
func (s *ReinforceService) Reinforce(accountID, copyID string, useSacrifice bool) (*ReinforceResult, error) {
	unlock := lockAccounts(accountID)
	defer unlock()

	var res ReinforceResult
	err := runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		res = ReinforceResult{}

		var owned models.OwnedCopy
		if err := tx.First(&owned, "id = ? AND account_id = ?", copyID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCopyNotFound
			}
			return err
		}

		odds, ok := s.Rules.ReinforceTable[owned.Force]
		if !ok {
			// force 10 is terminal
			return ErrMaxLevelReached
		}

		// Pay the cost before the rolls. Sacrifice consumes one duplicate
		// from the same stack; currency mode debits the fixed fee.
		if useSacrifice {
			if owned.Count < 2 {
				return ErrInsufficientDuplicates
			}
			owned.Count--
		} else {
			var account models.Account
			if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrAccountNotFound
				}
				return err
			}
			if account.Money < s.Rules.ReinforceCost {
				return ErrInsufficientFunds
			}
			if err := tx.Model(&models.Account{}).Where("id = ?", accountID).
				Update("money", gorm.Expr("money - ?", s.Rules.ReinforceCost)).Error; err != nil {
				return err
			}
		}

		breakRoll := s.RNG.IntN(100)
		successRoll := s.RNG.IntN(100)

		switch {
		case breakRoll < odds.Break:
			res.Outcome = ReinforceBroken
			if owned.Count == 1 {
				// Last copy in the stack is destroyed outright.
				if err := tx.Unscoped().Delete(&owned).Error; err != nil {
					return err
				}
				res.Deleted = true
				return nil
			}
			var base models.CharacterTemplate
			if err := tx.First(&base, "id = ?", owned.TemplateID).Error; err != nil {
				return err
			}
			owned.Speed = base.Speed
			owned.Decisiveness = base.Decisiveness
			owned.Power = base.Power
			owned.Defense = base.Defense
			owned.Stamina = base.Stamina
			owned.Force = 1
			owned.Count--
			if err := tx.Save(&owned).Error; err != nil {
				return err
			}
			res.Copy = &owned

		case successRoll > odds.Success:
			res.Outcome = ReinforceFailed
			// The cost stays paid; only a sacrificed duplicate needs writing.
			if useSacrifice {
				if err := tx.Model(&owned).Update("count", owned.Count).Error; err != nil {
					return err
				}
			}
			res.Copy = &owned

		default:
			res.Outcome = ReinforceSucceeded
			owned.Speed += owned.Speed / 10
			owned.Decisiveness += owned.Decisiveness / 10
			owned.Power += owned.Power / 10
			owned.Defense += owned.Defense / 10
			owned.Stamina += owned.Stamina / 10
			owned.Force++
			if err := tx.Save(&owned).Error; err != nil {
				return err
			}
			res.Copy = &owned
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
