package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"triviahost/internal/content"
	"triviahost/internal/domain"
)

// Notifier is how the session reaches connected clients. The transport
// hub implements it; tests substitute a recorder.
type Notifier interface {
	Unicast(connID, event string, payload any)
	Broadcast(event string, payload any)
}

// PackSource loads question packs by id, typically cache-backed.
type PackSource interface {
	GetPack(ctx context.Context, id string) (domain.QuestionPack, error)
}

// SessionConfig bundles everything tunable about a running game host.
type SessionConfig struct {
	Score ScoreConfig
	Round RoundConfig
	// DefaultPack names the pack loaded when no questions were imported.
	DefaultPack string
	// StartDelay is the presentation pause between "series started" and
	// the first question broadcast.
	StartDelay time.Duration
	// AdminMarkers are name substrings that grant moderator rights.
	AdminMarkers []string
}

// DefaultSessionConfig matches the classic host tuning.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Score:       DefaultScoreConfig(),
		Round:       RoundConfig{Limit: 10, BaseTime: 15},
		DefaultPack: "default",
		StartDelay:  time.Second,
	}
}

// Session is the single process-wide game: one registry, one round
// controller, one mutex. Every inbound event is serialized through the
// lock so the answered-flag guard cannot race. No server-side answer
// timers exist; the time limit is advisory and enforced client-side.
type Session struct {
	mu       sync.Mutex
	registry *Registry
	round    *Round
	notifier Notifier
	packs    PackSource
	roaster  *RoastPicker
	rnd      *rand.Rand
	cfg      SessionConfig

	// pending is the imported question bank, preferred over the default
	// pack for as long as the process lives.
	pending []domain.Question
	// gen increments each series start so a stale pacing timer from a
	// replaced series never fires into the new one.
	gen int
	// schedule is time.AfterFunc unless a test swaps it out.
	schedule func(time.Duration, func())
}

// NewSession builds the game host. rnd drives both the fallback shuffle
// and roast selection; inject a seeded source for deterministic tests.
func NewSession(cfg SessionConfig, notifier Notifier, packs PackSource, rnd *rand.Rand) *Session {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	registry := NewRegistry(cfg.AdminMarkers)
	return &Session{
		registry: registry,
		round:    NewRound(registry, cfg.Score),
		notifier: notifier,
		packs:    packs,
		roaster:  NewRoastPicker(rnd),
		rnd:      rnd,
		cfg:      cfg,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// Join registers a connection, confirms its role privately and
// broadcasts the refreshed lobby roster.
func (s *Session) Join(connID, name, avatar string, forceAdmin bool) {
	s.mu.Lock()
	p := s.registry.Register(connID, name, avatar, forceAdmin)
	lobby := ProjectLeaderboard(s.registry.Players())
	s.mu.Unlock()

	s.notifier.Unicast(connID, EventJoinSuccess, JoinSuccessPayload{IsAdmin: p.IsModerator(), ConnID: connID})
	s.notifier.Broadcast(EventLobbyUpdate, LobbyUpdatePayload{Players: lobby})
}

// Leave drops a connection and broadcasts the roster. Unknown
// connections are ignored, which covers duplicate disconnects.
func (s *Session) Leave(connID string) {
	s.mu.Lock()
	_, known := s.registry.Get(connID)
	s.registry.Remove(connID)
	lobby := ProjectLeaderboard(s.registry.Players())
	s.mu.Unlock()

	if known {
		s.notifier.Broadcast(EventLobbyUpdate, LobbyUpdatePayload{Players: lobby})
	}
}

// Import adds moderator-supplied questions to the front of the imported
// bank; the bank takes precedence over the default pack at every
// subsequent series start. Non-moderators are silently ignored.
func (s *Session) Import(connID string, questions []domain.Question) {
	s.mu.Lock()
	if !s.isModeratorLocked(connID) {
		s.mu.Unlock()
		return
	}
	cleaned := content.NormalizeAll(questions)
	s.pending = append(cleaned, s.pending...)
	s.mu.Unlock()

	s.notifier.Unicast(connID, EventAdminMsg, AdminMsgPayload{
		Message: fmt.Sprintf("question bank updated: %d questions added", len(cleaned)),
	})
}

// Start begins a new series. A series already running is replaced
// outright. The pool is chosen in order of preference: imported
// questions, the configured default pack, then the built-in set
// shuffled. With nothing left even after fallback, the requesting
// moderator alone is told the start failed.
func (s *Session) Start(ctx context.Context, connID string, limit, questionTime int) {
	s.mu.Lock()
	if !s.isModeratorLocked(connID) {
		s.mu.Unlock()
		return
	}

	// The imported bank persists across series; it is a question source,
	// not a per-series queue.
	pool := append([]domain.Question(nil), s.pending...)
	if len(pool) == 0 {
		pool = s.loadDefaultPool(ctx)
	}

	cfg := s.cfg.Round
	if limit > 0 {
		cfg.Limit = limit
	}
	if questionTime > 0 {
		cfg.BaseTime = questionTime
	}

	if err := s.round.StartSeries(pool, cfg); err != nil {
		s.mu.Unlock()
		s.notifier.Unicast(connID, EventError, ErrorPayload{Message: err.Error()})
		return
	}

	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.notifier.Broadcast(EventSeriesStarted, struct{}{})
	// Presentation pacing only; late joins keep being serviced because
	// nothing blocks while the timer runs.
	s.schedule(s.cfg.StartDelay, func() { s.pushCurrentQuestion(gen) })
}

// loadDefaultPool is called with the lock held.
func (s *Session) loadDefaultPool(ctx context.Context) []domain.Question {
	if s.packs != nil && s.cfg.DefaultPack != "" {
		if pack, err := s.packs.GetPack(ctx, s.cfg.DefaultPack); err == nil && len(pack.Questions) > 0 {
			return content.NormalizeAll(pack.Questions)
		}
	}
	pool := content.DefaultQuestions()
	s.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool
}

// pushCurrentQuestion broadcasts the question under the cursor, unless
// the series it was scheduled for has since been replaced or ended.
func (s *Session) pushCurrentQuestion(gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	q, ok := s.round.CurrentQuestion()
	if !ok {
		s.mu.Unlock()
		return
	}
	payload := QuestionPayload{
		Prompt:    q.Prompt,
		Options:   q.Options,
		TimeLimit: s.round.TimeLimit(q),
		Points:    s.round.PointsValue(q),
		Index:     s.round.Cursor() + 1,
		Total:     s.round.Total(),
	}
	s.mu.Unlock()

	s.notifier.Broadcast(EventQuestion, payload)
}

// SubmitAnswer scores a submission and tells the submitter, and only
// the submitter, how they did. Rejected submissions (no series, unknown
// player, already answered) stay silent.
func (s *Session) SubmitAnswer(connID string, option int, timeRemaining float64) {
	s.mu.Lock()
	outcome, accepted := s.round.AcceptAnswer(connID, option, timeRemaining)
	s.mu.Unlock()

	if !accepted {
		return
	}
	s.notifier.Unicast(connID, EventAnswerResult, AnswerResultPayload{
		Correct: outcome.Correct,
		Score:   outcome.Score,
	})
}

// Advance moves to the next question or, when the series is done,
// broadcasts the final leaderboard. Moderator-only.
func (s *Session) Advance(connID string) {
	s.mu.Lock()
	if !s.isModeratorLocked(connID) || !s.round.Running() {
		s.mu.Unlock()
		return
	}
	more := s.round.Advance()
	gen := s.gen
	var final domain.Leaderboard
	if !more {
		final = ProjectLeaderboard(s.registry.Players())
	}
	s.mu.Unlock()

	if more {
		s.pushCurrentQuestion(gen)
		return
	}
	s.notifier.Broadcast(EventSeriesOver, SeriesOverPayload{Leaderboard: final})
}

// ShowScores broadcasts the current standings with a roast keyed to the
// leader's score. Moderator-only, usable mid-round.
func (s *Session) ShowScores(connID string) {
	s.mu.Lock()
	if !s.isModeratorLocked(connID) {
		s.mu.Unlock()
		return
	}
	lb := ProjectLeaderboard(s.registry.Players())
	top := 0
	if len(lb) > 0 {
		top = lb[0].Score
	}
	roast := s.roaster.Pick(top)
	s.mu.Unlock()

	s.notifier.Broadcast(EventIntermediate, IntermediatePayload{
		Leaderboard: lb,
		Roast:       roast,
		Title:       "ROUND ANALYSIS",
	})
}

func (s *Session) isModeratorLocked(connID string) bool {
	p, ok := s.registry.Get(connID)
	return ok && p.IsModerator()
}
