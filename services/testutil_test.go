package services

import (
	"fmt"
	"testing"

	"roster-game-system/config"
	"roster-game-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up an isolated in-memory database migrated with the full
// schema. One pooled connection keeps concurrent test goroutines from hitting
// sqlite's writer limit.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.CharacterTemplate{},
		&models.OwnedCopy{},
		&models.Team{},
		&models.TeamMember{},
		&models.AccountMilestone{},
	))
	return db
}

func testRules() config.Rules { return config.DefaultRules() }

func makeAccount(t *testing.T, db *gorm.DB, money, score int) *models.Account {
	t.Helper()
	account := models.Account{
		ID:       uuid.NewString(),
		LoginID:  "acct" + uuid.NewString()[:8],
		Password: "x",
		NickName: "player-" + uuid.NewString()[:8],
		Money:    money,
		Score:    score,
	}
	require.NoError(t, db.Create(&account).Error)
	return &account
}

func makeTemplate(t *testing.T, db *gorm.DB, tier string, speed, decisiveness, power, defense, stamina int) *models.CharacterTemplate {
	t.Helper()
	tpl := models.CharacterTemplate{
		ID:           uuid.NewString(),
		Name:         "tpl-" + uuid.NewString()[:8],
		Speed:        speed,
		Decisiveness: decisiveness,
		Power:        power,
		Defense:      defense,
		Stamina:      stamina,
		Tier:         tier,
	}
	require.NoError(t, db.Create(&tpl).Error)
	return &tpl
}

func makeCopy(t *testing.T, db *gorm.DB, account *models.Account, tpl *models.CharacterTemplate, count, force int) *models.OwnedCopy {
	t.Helper()
	owned := models.OwnedCopy{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		TemplateID:   tpl.ID,
		Speed:        tpl.Speed,
		Decisiveness: tpl.Decisiveness,
		Power:        tpl.Power,
		Defense:      tpl.Defense,
		Stamina:      tpl.Stamina,
		Count:        count,
		Force:        force,
	}
	require.NoError(t, db.Create(&owned).Error)
	return &owned
}

// makeTeam wires a 3-member team of fresh C-tier copies, one per given stat
// total (each total must be divisible by 5). Team power is the sum of totals.
func makeTeam(t *testing.T, db *gorm.DB, account *models.Account, memberTotals [3]int) *models.Team {
	t.Helper()

	team := models.Team{ID: uuid.NewString(), AccountID: account.ID, Name: "team"}
	require.NoError(t, db.Create(&team).Error)
	for _, total := range memberTotals {
		per := total / 5
		tpl := makeTemplate(t, db, "C", per, per, per, per, per)
		owned := makeCopy(t, db, account, tpl, 1, 1)
		member := models.TeamMember{
			ID:        uuid.NewString(),
			TeamID:    team.ID,
			AccountID: account.ID,
			CopyID:    owned.ID,
		}
		require.NoError(t, db.Create(&member).Error)
	}
	return &team
}

// scriptedRNG replays fixed rolls in order. Exhausting a script falls back to
// zero, which keeps assertions deterministic.
type scriptedRNG struct {
	ints   []int
	floats []float64
}

func (s *scriptedRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
