package services

import (
	"errors"
	"log"
	"time"

	"roster-game-system/config"
	"roster-game-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneService grants one-shot win-count rewards. Granting is idempotent:
// a milestone already marked for the account is skipped, so the check can run
// from the request path and from the periodic sweep without double-paying.
type MilestoneService struct {
	DB    *gorm.DB
	Rules config.Rules
}

func NewMilestoneService(db *gorm.DB, rules config.Rules) *MilestoneService {
	return &MilestoneService{DB: db, Rules: rules}
}

// CheckAndGrant marks every newly reached milestone and credits its reward,
// all in one transaction. Returns the milestones granted by this call.
func (s *MilestoneService) CheckAndGrant(accountID string) ([]models.AccountMilestone, error) {
	unlock := lockAccounts(accountID)
	defer unlock()

	var granted []models.AccountMilestone
	err := runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		granted = granted[:0]

		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		for _, def := range models.MilestoneDefs {
			if account.Wins < def.Wins {
				continue
			}
			var n int64
			if err := tx.Model(&models.AccountMilestone{}).
				Where("account_id = ? AND code = ?", accountID, def.Code).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}

			grant := models.AccountMilestone{
				ID:        uuid.NewString(),
				AccountID: accountID,
				Code:      def.Code,
				Reward:    def.Reward,
			}
			if err := tx.Create(&grant).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Account{}).Where("id = ?", accountID).
				Update("money", gorm.Expr("money + ?", def.Reward)).Error; err != nil {
				return err
			}
			granted = append(granted, grant)
			log.Printf("🏆 Milestone granted: %s → %s (+%d)", def.Code, accountID, def.Reward)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return granted, nil
}

// ListGranted returns the account's achieved milestones.
func (s *MilestoneService) ListGranted(accountID string) ([]models.AccountMilestone, error) {
	var grants []models.AccountMilestone
	err := s.DB.Where("account_id = ?", accountID).
		Order("awarded_at ASC").
		Find(&grants).Error
	return grants, err
}

// SweepRecent runs the milestone check for every account active since the
// given time. Used by the background worker.
func (s *MilestoneService) SweepRecent(since time.Time) error {
	var ids []string
	if err := s.DB.Model(&models.Account{}).
		Where("updated_at >= ?", since).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.CheckAndGrant(id); err != nil {
			log.Printf("[MilestoneSweep] check failed for %s: %v", id, err)
		}
	}
	return nil
}
