package services

import "errors"

// Request-level failure taxonomy. Handlers translate these into HTTP statuses;
// anything not listed here surfaces as an internal error. In-game outcomes
// (reinforce fail/break, match loss) are results, not errors.
var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInsufficientDuplicates = errors.New("insufficient duplicate copies")
	ErrMaxLevelReached        = errors.New("copy is already at max force")
	ErrCopyNotFound           = errors.New("owned copy not found")
	ErrIncompleteTeam         = errors.New("team must field exactly 3 members")
	ErrNoEligibleOpponent     = errors.New("no eligible opponent available")
	ErrEmptyTierPool          = errors.New("no character templates in rolled tier")
	ErrStoreConflict          = errors.New("storage conflict, please retry")

	ErrAccountNotFound  = errors.New("account not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrTemplateNotFound = errors.New("character template not found")
	ErrNotTeamOwner     = errors.New("team does not belong to this account")

	ErrLoginTaken         = errors.New("login id already in use")
	ErrInvalidLoginID     = errors.New("login id must be lowercase letters and digits")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTemplate    = errors.New("invalid character template")
)
