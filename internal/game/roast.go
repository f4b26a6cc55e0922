package game

import "math/rand"

// Roast tiers, keyed by how well the current leader is doing.
const (
	tierLow  = "low"
	tierMid  = "mid"
	tierHigh = "high"
)

var roasts = map[string][]string{
	tierLow: {
		"My grandmother types faster than that.",
		"Did you panic? You looked like you panicked.",
		"Are you playing with your elbows?",
		"I've seen smarter toast.",
		"Participation trophies for everyone at the bottom!",
		"System Error: User intelligence not found.",
		"Yikes. Just... yikes.",
	},
	tierMid: {
		"Mediocrity achieved. Congratulations.",
		"Not terrible. Not great. Just... there.",
		"You're the vanilla ice cream of trivia players.",
		"Safe. Boring. Middle of the pack.",
		"Keep trying, you might reach 'average' soon.",
	},
	tierHigh: {
		"Okay, who is cheating?",
		"Touch grass, nerd.",
		"Big brain energy detected.",
		"Don't get cocky, it's just trivia.",
		"Impressive. Most impressive.",
	},
}

// RoastPicker selects flavor text for intermediate results. The random
// source is injected so tests can pin the pick.
type RoastPicker struct {
	rnd *rand.Rand
}

// NewRoastPicker builds a picker over the given source.
func NewRoastPicker(rnd *rand.Rand) *RoastPicker {
	return &RoastPicker{rnd: rnd}
}

// roastTier maps the leader's score onto a commentary tier.
func roastTier(topScore int) string {
	switch {
	case topScore > 8000:
		return tierHigh
	case topScore > 3000:
		return tierMid
	default:
		return tierLow
	}
}

// Pick returns a roast keyed by the current leader's score.
func (rp *RoastPicker) Pick(topScore int) string {
	pool := roasts[roastTier(topScore)]
	return pool[rp.rnd.Intn(len(pool))]
}
