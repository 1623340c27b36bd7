package services

import (
	"errors"
	"fmt"
	"sort"

	"roster-game-system/config"
	"roster-game-system/models"

	"gorm.io/gorm"
)

// MatchService finds an opponent near the requester's ranking score and
// resolves one simulated match, moving both ledgers symmetrically.
type MatchService struct {
	DB    *gorm.DB
	Rules config.Rules
	RNG   RandomSource
}

func NewMatchService(db *gorm.DB, rules config.Rules, rng RandomSource) *MatchService {
	return &MatchService{DB: db, Rules: rules, RNG: rng}
}

type MatchResult struct {
	Result  string `json:"result"` // win / loss / draw
	Summary string `json:"summary"`

	MyGoals       int `json:"my_goals"`
	OpponentGoals int `json:"opponent_goals"`

	MyPower       int `json:"my_power"`
	OpponentPower int `json:"opponent_power"`

	OpponentID   string `json:"opponent_id"`
	OpponentName string `json:"opponent_name"`

	MyScore       int `json:"my_score"`
	OpponentScore int `json:"opponent_score"`
	MyMoney       int `json:"my_money"`
	OpponentMoney int `json:"opponent_money"`
}

// PlayMatch enters the account's team into one ranked match. Opponent
// selection reads in its own snapshot; settlement re-reads both accounts under
// their locks so the two ledger updates commit together.
func (s *MatchService) PlayMatch(accountID, teamID string) (*MatchResult, error) {
	if err := s.checkTeam(accountID, teamID); err != nil {
		return nil, err
	}

	opponentID, err := s.pickOpponent(accountID)
	if err != nil {
		return nil, err
	}

	unlock := lockAccounts(accountID, opponentID)
	defer unlock()

	var res MatchResult
	err = runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		res = MatchResult{}

		var me, enemy models.Account
		if err := tx.First(&me, "id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := tx.First(&enemy, "id = ?", opponentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoEligibleOpponent
			}
			return err
		}

		myPower, err := s.teamPower(tx, teamCopyIDsQuery(tx, teamID))
		if err != nil {
			return err
		}
		enemyPower, err := s.teamPower(tx, assignedCopyIDsQuery(tx, opponentID))
		if err != nil {
			return err
		}

		outcome, myGoals, enemyGoals := s.resolve(myPower, enemyPower)

		var myScoreDelta, enemyScoreDelta func(int) int
		var myReward, enemyReward int
		switch outcome {
		case "win":
			myScoreDelta = func(v int) int { return v + s.Rules.WinScoreGain }
			enemyScoreDelta = func(v int) int { return max(v-s.Rules.LossScorePenalty, 0) }
			myReward, enemyReward = s.Rules.WinMoney, s.Rules.LossMoney
		case "loss":
			myScoreDelta = func(v int) int { return max(v-s.Rules.LossScorePenalty, 0) }
			enemyScoreDelta = func(v int) int { return v + s.Rules.WinScoreGain }
			myReward, enemyReward = s.Rules.LossMoney, s.Rules.WinMoney
		default:
			myScoreDelta = func(v int) int { return v + s.Rules.DrawScoreGain }
			enemyScoreDelta = func(v int) int { return v + s.Rules.DrawScoreGain }
			myReward, enemyReward = s.Rules.DrawMoney, s.Rules.DrawMoney
		}

		newMyScore := myScoreDelta(me.Score)
		newEnemyScore := enemyScoreDelta(enemy.Score)

		myUpdates := map[string]interface{}{
			"score": newMyScore,
			"money": gorm.Expr("money + ?", myReward),
		}
		enemyUpdates := map[string]interface{}{
			"score": newEnemyScore,
			"money": gorm.Expr("money + ?", enemyReward),
		}
		if outcome == "win" {
			myUpdates["wins"] = gorm.Expr("wins + 1")
		} else if outcome == "loss" {
			enemyUpdates["wins"] = gorm.Expr("wins + 1")
		}

		if err := tx.Model(&models.Account{}).Where("id = ?", me.ID).
			Updates(myUpdates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Account{}).Where("id = ?", enemy.ID).
			Updates(enemyUpdates).Error; err != nil {
			return err
		}

		res = MatchResult{
			Result:        outcome,
			MyGoals:       myGoals,
			OpponentGoals: enemyGoals,
			MyPower:       myPower,
			OpponentPower: enemyPower,
			OpponentID:    enemy.ID,
			OpponentName:  enemy.NickName,
			MyScore:       newMyScore,
			OpponentScore: newEnemyScore,
			MyMoney:       myReward,
			OpponentMoney: enemyReward,
		}
		res.Summary = summarize(outcome, enemy.NickName, myGoals, enemyGoals)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Exhibition resolves a match between two named teams without touching any
// ledger; only the computed result is reported.
func (s *MatchService) Exhibition(teamAID, teamBID string) (*MatchResult, error) {
	var res MatchResult
	err := runInTx(s.DB, s.Rules.TxRetries, func(tx *gorm.DB) error {
		for _, id := range []string{teamAID, teamBID} {
			var n int64
			if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", id).
				Count(&n).Error; err != nil {
				return err
			}
			if n != 3 {
				return ErrIncompleteTeam
			}
		}

		powerA, err := s.teamPower(tx, teamCopyIDsQuery(tx, teamAID))
		if err != nil {
			return err
		}
		powerB, err := s.teamPower(tx, teamCopyIDsQuery(tx, teamBID))
		if err != nil {
			return err
		}

		outcome, goalsA, goalsB := s.resolve(powerA, powerB)
		res = MatchResult{
			Result:        outcome,
			MyGoals:       goalsA,
			OpponentGoals: goalsB,
			MyPower:       powerA,
			OpponentPower: powerB,
			OpponentID:    teamBID,
		}
		res.Summary = summarize(outcome, teamBID, goalsA, goalsB)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// checkTeam verifies ownership and the exactly-3-members precondition.
func (s *MatchService) checkTeam(accountID, teamID string) error {
	var team models.Team
	if err := s.DB.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if team.AccountID != accountID {
		return ErrNotTeamOwner
	}
	var n int64
	if err := s.DB.Model(&models.TeamMember{}).Where("team_id = ?", teamID).
		Count(&n).Error; err != nil {
		return err
	}
	if n != 3 {
		return ErrIncompleteTeam
	}
	return nil
}

// pickOpponent scans accounts that have exactly 3 distinct copies assigned
// across their teams, orders them by score ascending, and draws uniformly
// from the window of up to WindowRadius candidates on each side of the
// requester's score position.
func (s *MatchService) pickOpponent(accountID string) (string, error) {
	var me models.Account
	if err := s.DB.First(&me, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	type assignedRow struct {
		AccountID string
	}
	var rows []assignedRow
	if err := s.DB.Model(&models.TeamMember{}).
		Select("account_id").
		Where("account_id <> ?", accountID).
		Group("account_id").
		Having("COUNT(DISTINCT copy_id) = 3").
		Scan(&rows).Error; err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNoEligibleOpponent
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AccountID)
	}

	var candidates []models.Account
	if err := s.DB.Where("id IN ?", ids).Order("score ASC").
		Find(&candidates).Error; err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", ErrNoEligibleOpponent
	}

	// Position the requester in the ordering by score value, then take the
	// surrounding window.
	idx := sort.Search(len(candidates), func(i int) bool {
		return candidates[i].Score >= me.Score
	})
	lo := max(idx-s.Rules.WindowRadius, 0)
	hi := min(idx+s.Rules.WindowRadius, len(candidates))
	window := candidates[lo:hi]
	if len(window) == 0 {
		return "", ErrNoEligibleOpponent
	}

	return window[s.RNG.IntN(len(window))].ID, nil
}

// resolve draws the outcome over the combined power line and generates the
// cosmetic scoreline. r landing exactly on myPower is a draw.
func (s *MatchService) resolve(myPower, enemyPower int) (outcome string, myGoals, enemyGoals int) {
	total := myPower + enemyPower
	r := s.RNG.Float64() * float64(total)

	switch {
	case r < float64(myPower):
		outcome = "win"
		myGoals = s.RNG.IntN(4) + 2
		enemyGoals = s.RNG.IntN(min(3, myGoals))
	case r > float64(myPower):
		outcome = "loss"
		enemyGoals = s.RNG.IntN(4) + 2
		myGoals = s.RNG.IntN(min(3, enemyGoals))
	default:
		outcome = "draw"
		myGoals = s.RNG.IntN(4) + 2
		enemyGoals = myGoals
	}
	return outcome, myGoals, enemyGoals
}

// teamPower sums the five current stats over the copies returned by the
// given id query. Post-reinforcement stats count, not template bases.
func (s *MatchService) teamPower(tx *gorm.DB, idQuery *gorm.DB) (int, error) {
	var copies []models.OwnedCopy
	if err := tx.Where("id IN (?)", idQuery).Find(&copies).Error; err != nil {
		return 0, err
	}
	total := 0
	for i := range copies {
		total += copies[i].StatTotal()
	}
	return total, nil
}

func teamCopyIDsQuery(tx *gorm.DB, teamID string) *gorm.DB {
	return tx.Model(&models.TeamMember{}).Select("DISTINCT copy_id").
		Where("team_id = ?", teamID)
}

func assignedCopyIDsQuery(tx *gorm.DB, accountID string) *gorm.DB {
	return tx.Model(&models.TeamMember{}).Select("DISTINCT copy_id").
		Where("account_id = ?", accountID)
}

func summarize(outcome, opponent string, myGoals, enemyGoals int) string {
	switch outcome {
	case "win":
		return fmt.Sprintf("victory over %s: %d - %d", opponent, myGoals, enemyGoals)
	case "loss":
		return fmt.Sprintf("defeat against %s: %d - %d", opponent, myGoals, enemyGoals)
	default:
		return fmt.Sprintf("draw with %s: %d - %d", opponent, myGoals, enemyGoals)
	}
}
