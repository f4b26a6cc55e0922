package game

import "triviahost/internal/domain"

// RoundConfig carries the per-series knobs that are fixed once a series starts.
type RoundConfig struct {
	// Limit caps how many questions a series asks.
	Limit int
	// BaseTime is the advisory answer window, in seconds, for a
	// difficulty-1 question.
	BaseTime int
	// TimeFactor adds seconds per difficulty tier on top of BaseTime.
	TimeFactor int
	// CloseUnanswered makes Advance treat players who never submitted as
	// having answered wrong, breaking their streak.
	CloseUnanswered bool
}

// Round is the series state machine: an ordered question list, a cursor,
// and the running flag. It mutates player state through the registry and
// must only be touched while the owning Session holds its lock.
type Round struct {
	registry *Registry
	score    ScoreConfig

	questions []domain.Question
	cursor    int
	running   bool
	cfg       RoundConfig
}

// NewRound wires a controller to the registry it scores against.
func NewRound(registry *Registry, score ScoreConfig) *Round {
	return &Round{registry: registry, score: score}
}

// Running reports whether a series is in progress.
func (r *Round) Running() bool {
	return r.running
}

// Cursor returns the 0-based index of the current question.
func (r *Round) Cursor() int {
	return r.cursor
}

// StartSeries resets the controller onto a fresh question list. A series
// already running is unconditionally replaced, never rejected. Every
// player's score, streak and answered flag is zeroed. An empty pool is
// the one invalid configuration.
func (r *Round) StartSeries(pool []domain.Question, cfg RoundConfig) error {
	if len(pool) == 0 {
		return domain.ErrNoQuestions
	}
	if cfg.Limit <= 0 {
		cfg.Limit = len(pool)
	}
	if cfg.BaseTime <= 0 {
		cfg.BaseTime = 15
	}
	r.questions = pool
	r.cursor = 0
	r.cfg = cfg
	r.running = true
	r.registry.ResetForNewSeries()
	return nil
}

// CurrentQuestion returns the question under the cursor, or false when
// the cursor has run off the list.
func (r *Round) CurrentQuestion() (domain.Question, bool) {
	if !r.running || r.cursor >= len(r.questions) || r.cursor >= r.cfg.Limit {
		return domain.Question{}, false
	}
	return r.questions[r.cursor], true
}

// Advance moves the cursor to the next question and clears every
// answered flag. It returns false when the series is over, either
// because the list is exhausted or the configured limit was reached;
// the controller then goes idle and the caller emits the final
// leaderboard.
func (r *Round) Advance() bool {
	if !r.running {
		return false
	}
	if r.cfg.CloseUnanswered {
		for _, p := range r.registry.Players() {
			if !p.Answered {
				p.Streak = 0
			}
		}
	}
	r.cursor++
	r.registry.ClearAnswered()

	if r.cursor < len(r.questions) && r.cursor < r.cfg.Limit {
		return true
	}
	r.running = false
	return false
}

// AnswerOutcome is what the submitter learns about their own answer.
type AnswerOutcome struct {
	Correct bool
	Score   int
}

// AcceptAnswer scores one submission. It is a silent no-op (accepted ==
// false) when no series is running, the player is unknown, or the
// player already answered the current question; the answered flag makes
// a second call for the same question idempotent.
func (r *Round) AcceptAnswer(connID string, option int, timeRemaining float64) (AnswerOutcome, bool) {
	if !r.running {
		return AnswerOutcome{}, false
	}
	p, ok := r.registry.Get(connID)
	if !ok || p.Answered {
		return AnswerOutcome{}, false
	}
	q, ok := r.CurrentQuestion()
	if !ok {
		return AnswerOutcome{}, false
	}

	correct := option == q.Answer
	points, streak := ScoreDelta(r.score, correct, timeRemaining, p.Streak, q.Tier())
	p.Score += points
	p.Streak = streak
	p.Answered = true
	return AnswerOutcome{Correct: correct, Score: p.Score}, true
}

// TimeLimit derives the advisory answer window for a question from its
// difficulty tier. Deterministic for a given tier.
func (r *Round) TimeLimit(q domain.Question) int {
	return r.cfg.BaseTime + q.Tier()*r.cfg.TimeFactor
}

// PointsValue is the headline base value shown with a question.
func (r *Round) PointsValue(q domain.Question) int {
	return q.Tier() * r.score.BasePoints
}

// Total returns how many questions the running series will ask at most.
func (r *Round) Total() int {
	if len(r.questions) < r.cfg.Limit {
		return len(r.questions)
	}
	return r.cfg.Limit
}
