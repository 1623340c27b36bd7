package services

import (
	"errors"
	"testing"

	"roster-game-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReinforceSuccessStatGrowth(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 20, 33, 47, 55)
	owned := makeCopy(t, db, account, tpl, 1, 1)

	// force 1: success 80, break 0. break roll 99 (no break), success roll 10 (≤ 80).
	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{99, 10}})
	res, err := svc.Reinforce(account.ID, owned.ID, false)
	require.NoError(t, err)
	require.Equal(t, ReinforceSucceeded, res.Outcome)

	// Each stat grows by exactly floor(old * 0.10).
	assert.Equal(t, 11, res.Copy.Speed)
	assert.Equal(t, 22, res.Copy.Decisiveness)
	assert.Equal(t, 36, res.Copy.Power)
	assert.Equal(t, 51, res.Copy.Defense)
	assert.Equal(t, 60, res.Copy.Stamina)
	assert.Equal(t, 2, res.Copy.Force)

	var reloaded models.Account
	require.NoError(t, db.First(&reloaded, "id = ?", account.ID).Error)
	assert.Equal(t, 10000-rules.ReinforceCost, reloaded.Money)
}

func TestReinforceFailKeepsState(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 1, 3)

	// force 3: success 50, break 0. success roll 51 > 50 → fail.
	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{99, 51}})
	res, err := svc.Reinforce(account.ID, owned.ID, false)
	require.NoError(t, err)
	assert.Equal(t, ReinforceFailed, res.Outcome)

	var reloaded models.OwnedCopy
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	assert.Equal(t, 3, reloaded.Force)
	assert.Equal(t, 10, reloaded.Speed)

	// The fee stays paid even on failure.
	var acc models.Account
	require.NoError(t, db.First(&acc, "id = ?", account.ID).Error)
	assert.Equal(t, 10000-rules.ReinforceCost, acc.Money)
}

func TestReinforceBreakBeatsSuccessRoll(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 1, 4)

	// force 4: success 40, break 10. break roll 5 < 10 → break wins even
	// though the success roll (0) would have passed.
	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{5, 0}})
	res, err := svc.Reinforce(account.ID, owned.ID, false)
	require.NoError(t, err)
	assert.Equal(t, ReinforceBroken, res.Outcome)
}

func TestReinforceBreakLastCopyDeletes(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 1, 5)

	// force 5: break 15. break roll 0 → break; count 1 → row destroyed.
	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{0, 0}})
	res, err := svc.Reinforce(account.ID, owned.ID, false)
	require.NoError(t, err)
	assert.Equal(t, ReinforceBroken, res.Outcome)
	assert.True(t, res.Deleted)
	assert.Nil(t, res.Copy)

	err = db.First(&models.OwnedCopy{}, "id = ?", owned.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReinforceBreakWithStackResets(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 20, 30, 40, 50)
	owned := makeCopy(t, db, account, tpl, 3, 6)
	// Diverged stats from earlier reinforcement.
	require.NoError(t, db.Model(owned).Updates(map[string]interface{}{
		"speed": 14, "decisiveness": 28, "power": 42, "defense": 56, "stamina": 70,
	}).Error)

	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{0, 0}})
	res, err := svc.Reinforce(account.ID, owned.ID, false)
	require.NoError(t, err)
	require.Equal(t, ReinforceBroken, res.Outcome)
	require.NotNil(t, res.Copy)

	// Back to template base stats, force 1, count down by exactly 1.
	assert.Equal(t, 10, res.Copy.Speed)
	assert.Equal(t, 20, res.Copy.Decisiveness)
	assert.Equal(t, 30, res.Copy.Power)
	assert.Equal(t, 40, res.Copy.Defense)
	assert.Equal(t, 50, res.Copy.Stamina)
	assert.Equal(t, 1, res.Copy.Force)
	assert.Equal(t, 2, res.Copy.Count)
}

func TestReinforceMaxForceRejected(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "S", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 2, 10)

	svc := NewReinforceService(db, rules, NewSeededRNG(1))
	_, err := svc.Reinforce(account.ID, owned.ID, false)
	require.ErrorIs(t, err, ErrMaxLevelReached)

	// Nothing moved: no debit, no copy mutation.
	var acc models.Account
	require.NoError(t, db.First(&acc, "id = ?", account.ID).Error)
	assert.Equal(t, 10000, acc.Money)
	var reloaded models.OwnedCopy
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	assert.Equal(t, 10, reloaded.Force)
	assert.Equal(t, 2, reloaded.Count)
}

func TestReinforceSacrificeConsumesDuplicate(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 2, 2)

	// force 2: success 60. success roll 70 > 60 → fail, but the duplicate is
	// still gone and no money moved.
	svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{99, 70}})
	res, err := svc.Reinforce(account.ID, owned.ID, true)
	require.NoError(t, err)
	assert.Equal(t, ReinforceFailed, res.Outcome)

	var reloaded models.OwnedCopy
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	assert.Equal(t, 1, reloaded.Count)

	var acc models.Account
	require.NoError(t, db.First(&acc, "id = ?", account.ID).Error)
	assert.Equal(t, 10000, acc.Money)
}

func TestReinforceSacrificeNeedsTwoCopies(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 1, 2)

	svc := NewReinforceService(db, rules, NewSeededRNG(1))
	_, err := svc.Reinforce(account.ID, owned.ID, true)
	require.ErrorIs(t, err, ErrInsufficientDuplicates)

	var reloaded models.OwnedCopy
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	assert.Equal(t, 1, reloaded.Count)
}

func TestReinforceCurrencyInsufficient(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, rules.ReinforceCost-1, 1000)
	tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
	owned := makeCopy(t, db, account, tpl, 1, 2)

	svc := NewReinforceService(db, rules, NewSeededRNG(1))
	_, err := svc.Reinforce(account.ID, owned.ID, false)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	var acc models.Account
	require.NoError(t, db.First(&acc, "id = ?", account.ID).Error)
	assert.Equal(t, rules.ReinforceCost-1, acc.Money)
	var reloaded models.OwnedCopy
	require.NoError(t, db.First(&reloaded, "id = ?", owned.ID).Error)
	assert.Equal(t, 2, reloaded.Force)
}

func TestReinforceUnknownCopy(t *testing.T) {
	db := openTestDB(t)
	rules := testRules()
	account := makeAccount(t, db, 10000, 1000)

	svc := NewReinforceService(db, rules, NewSeededRNG(1))
	_, err := svc.Reinforce(account.ID, "missing", false)
	require.ErrorIs(t, err, ErrCopyNotFound)
}

// Walk the whole probability table: with a break roll just below the break
// threshold the outcome must be break; with rolls just outside both
// thresholds it must be a plain fail.
func TestReinforceTableBoundaries(t *testing.T) {
	rules := testRules()
	for force := 1; force <= 9; force++ {
		odds := rules.ReinforceTable[force]

		db := openTestDB(t)
		account := makeAccount(t, db, 100000, 1000)
		tpl := makeTemplate(t, db, "B", 10, 10, 10, 10, 10)
		owned := makeCopy(t, db, account, tpl, 5, force)

		if odds.Break > 0 {
			svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{odds.Break - 1, 0}})
			res, err := svc.Reinforce(account.ID, owned.ID, false)
			require.NoError(t, err)
			assert.Equal(t, ReinforceBroken, res.Outcome, "force %d", force)
		} else {
			// break% of 0 can never trigger
			svc := NewReinforceService(db, rules, &scriptedRNG{ints: []int{0, odds.Success + 1}})
			res, err := svc.Reinforce(account.ID, owned.ID, false)
			require.NoError(t, err)
			assert.Equal(t, ReinforceFailed, res.Outcome, "force %d", force)
		}
	}
}
