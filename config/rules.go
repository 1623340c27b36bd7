package config

// TierBand maps a rarity tier to its cumulative upper bound on the [0,100)
// draw roll. Bands are evaluated in order; the first band whose Upper exceeds
// the roll wins.
type TierBand struct {
	Tier  string
	Upper int
}

// ReinforceOdds holds the success/break percentages for one force level.
type ReinforceOdds struct {
	Success int
	Break   int
}

// Rules is the immutable game tuning injected into every engine at
// construction. Nothing mutates a Rules value after startup.
type Rules struct {
	DrawCost      int
	ReinforceCost int
	StartingMoney int
	StartingScore int

	// Cumulative tier thresholds. Uppers must be strictly increasing and the
	// last one must be 100 so the bands partition [0,100) exactly.
	TierBands []TierBand

	// Keyed by the copy's current force level. A level absent from the table
	// is terminal.
	ReinforceTable map[int]ReinforceOdds
	MaxForce       int

	// Battle settlement deltas.
	WinScoreGain     int
	LossScorePenalty int // subtracted, floored at 0
	DrawScoreGain    int
	WinMoney         int
	LossMoney        int
	DrawMoney        int

	// Opponents considered on each side of the requester's score position.
	WindowRadius int

	// Bounded retries for store-level transaction aborts.
	TxRetries int
}

func DefaultRules() Rules {
	return Rules{
		DrawCost:      1000,
		ReinforceCost: 5000,
		StartingMoney: 10000,
		StartingScore: 1000,

		// S 5%, A 20%, B 40%, C 35%
		TierBands: []TierBand{
			{Tier: "S", Upper: 5},
			{Tier: "A", Upper: 25},
			{Tier: "B", Upper: 65},
			{Tier: "C", Upper: 100},
		},

		ReinforceTable: map[int]ReinforceOdds{
			1: {Success: 80, Break: 0},
			2: {Success: 60, Break: 0},
			3: {Success: 50, Break: 0},
			4: {Success: 40, Break: 10},
			5: {Success: 25, Break: 15},
			6: {Success: 15, Break: 20},
			7: {Success: 10, Break: 25},
			8: {Success: 5, Break: 35},
			9: {Success: 1, Break: 50},
		},
		MaxForce: 10,

		WinScoreGain:     10,
		LossScorePenalty: 5,
		DrawScoreGain:    3,
		WinMoney:         5000,
		LossMoney:        2000,
		DrawMoney:        3000,

		WindowRadius: 3,
		TxRetries:    3,
	}
}
