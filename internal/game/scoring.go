package game

// ScoreConfig holds the tunable constants of the scoring formula.
type ScoreConfig struct {
	BasePoints     int
	TimeMultiplier float64
	StreakBonus    int
}

// DefaultScoreConfig mirrors the classic tuning: 1000 base, up to 10
// bonus points per remaining second, 50 extra per streak step.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		BasePoints:     1000,
		TimeMultiplier: 10,
		StreakBonus:    50,
	}
}

// ScoreDelta computes the points awarded for one submission and the
// player's new streak. Wrong answers award nothing and break the streak.
// Difficulty scales the base points only; time and streak bonuses are flat.
func ScoreDelta(cfg ScoreConfig, correct bool, timeRemaining float64, streak, difficulty int) (int, int) {
	if !correct {
		return 0, 0
	}
	if difficulty < 1 {
		difficulty = 1
	}
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	points := cfg.BasePoints*difficulty + int(timeRemaining*cfg.TimeMultiplier) + streak*cfg.StreakBonus
	return points, streak + 1
}
