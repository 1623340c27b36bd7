package services

import (
	"errors"
	"regexp"

	"roster-game-system/config"
	"roster-game-system/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var loginIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// AccountService covers the authentication boundary: registration, sign-in
// and token issuance. The game engines never see credentials; they receive
// the account id the middleware resolved from the token.
type AccountService struct {
	DB        *gorm.DB
	Rules     config.Rules
	JWTSecret string
}

func NewAccountService(db *gorm.DB, rules config.Rules, jwtSecret string) *AccountService {
	return &AccountService{DB: db, Rules: rules, JWTSecret: jwtSecret}
}

func (s *AccountService) SignUp(loginID, password, confirm, nickName string) (*models.Account, error) {
	if !loginIDPattern.MatchString(loginID) {
		return nil, ErrInvalidLoginID
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	var existing models.Account
	err := s.DB.First(&existing, "login_id = ?", loginID).Error
	if err == nil {
		return nil, ErrLoginTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		ID:       uuid.NewString(),
		LoginID:  loginID,
		Password: string(hashed),
		NickName: nickName,
		Money:    s.Rules.StartingMoney,
		Score:    s.Rules.StartingScore,
	}
	if err := s.DB.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// SignIn checks the credentials and returns a signed session token.
func (s *AccountService) SignIn(nickName, password string) (string, *models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, "nick_name = ?", nickName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": account.ID,
	})
	signed, err := token.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, &account, nil
}

func (s *AccountService) Get(accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
