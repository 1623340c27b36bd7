package services

import (
	"errors"

	"roster-game-system/config"
	"roster-game-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService manages the 3-member team rosters. Teams always hold exactly 3
// owned copies; creation and member swaps keep that invariant.
type TeamService struct {
	DB    *gorm.DB
	Rules config.Rules
}

func NewTeamService(db *gorm.DB, rules config.Rules) *TeamService {
	return &TeamService{DB: db, Rules: rules}
}

// Create builds a team from exactly 3 of the account's owned copies.
func (s *TeamService) Create(accountID, name string, copyIDs []string) (*models.Team, error) {
	if len(copyIDs) != 3 {
		return nil, ErrIncompleteTeam
	}

	var team models.Team
	err := runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		for _, copyID := range copyIDs {
			var owned models.OwnedCopy
			if err := tx.First(&owned, "id = ? AND account_id = ?", copyID, accountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCopyNotFound
				}
				return err
			}
		}

		team = models.Team{
			ID:        uuid.NewString(),
			AccountID: accountID,
			Name:      name,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		for _, copyID := range copyIDs {
			member := models.TeamMember{
				ID:        uuid.NewString(),
				TeamID:    team.ID,
				AccountID: accountID,
				CopyID:    copyID,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns every team with its members and their template names.
func (s *TeamService) List() ([]models.Team, error) {
	var teams []models.Team
	err := s.DB.Preload("Members").Preload("Members.Copy").
		Preload("Members.Copy.Template").
		Find(&teams).Error
	return teams, err
}

// SwapMember replaces one assigned copy with another owned copy, keeping the
// team at exactly 3 members.
func (s *TeamService) SwapMember(accountID, teamID, oldCopyID, newCopyID string) error {
	return runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		if team.AccountID != accountID {
			return ErrNotTeamOwner
		}

		var member models.TeamMember
		if err := tx.First(&member, "team_id = ? AND copy_id = ?", teamID, oldCopyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCopyNotFound
			}
			return err
		}

		var owned models.OwnedCopy
		if err := tx.First(&owned, "id = ? AND account_id = ?", newCopyID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCopyNotFound
			}
			return err
		}

		if err := tx.Unscoped().Delete(&member).Error; err != nil {
			return err
		}
		replacement := models.TeamMember{
			ID:        uuid.NewString(),
			TeamID:    teamID,
			AccountID: accountID,
			CopyID:    newCopyID,
		}
		return tx.Create(&replacement).Error
	})
}
