package domain

// Role distinguishes ordinary players from the host running the game.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleModerator   Role = "moderator"
)

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Player represents one connected client and its accumulated game state.
type Player struct {
	ConnID   string
	Name     string
	Avatar   string
	Role     Role
	Score    int
	Streak   int
	Answered bool
}

// IsModerator reports whether the player may run host-only actions.
func (p *Player) IsModerator() bool {
	return p.Role == RoleModerator
}

// Question models a single multiple-choice prompt with exactly one
// correct option.
type Question struct {
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	Answer     int      `json:"answer"`
	Difficulty int      `json:"difficulty,omitempty"`
}

// Tier returns the question's difficulty, normalized to at least 1.
func (q Question) Tier() int {
	if q.Difficulty < 1 {
		return 1
	}
	return q.Difficulty
}

// QuestionPack is a named collection of questions loaded from a content source.
type QuestionPack struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// LeaderboardEntry is a presentation-ready view of one player.
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Avatar string `json:"avatar"`
	Streak int    `json:"streak"`
}

// Leaderboard is the ranked scoreboard, highest score first.
type Leaderboard []LeaderboardEntry
