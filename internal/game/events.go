package game

import "triviahost/internal/domain"

// Outbound event names. The transport wraps these payloads in its own
// envelope; the names are part of the client contract.
const (
	EventJoinSuccess   = "join_success"
	EventLobbyUpdate   = "lobby_update"
	EventAdminMsg      = "admin_msg"
	EventSeriesStarted = "series_started"
	EventQuestion      = "question"
	EventAnswerResult  = "answer_result"
	EventSeriesOver    = "series_over"
	EventIntermediate  = "intermediate_results"
	EventError         = "error"
)

// JoinSuccessPayload confirms registration to the joiner only.
type JoinSuccessPayload struct {
	IsAdmin bool   `json:"is_admin"`
	ConnID  string `json:"conn_id"`
}

// LobbyUpdatePayload is the roster broadcast on join and disconnect.
type LobbyUpdatePayload struct {
	Players domain.Leaderboard `json:"players"`
}

// AdminMsgPayload carries host-only status lines, e.g. import results.
type AdminMsgPayload struct {
	Message string `json:"msg"`
}

// QuestionPayload is the broadcast shape of the current question. The
// correct answer index is deliberately absent.
type QuestionPayload struct {
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"time_limit"`
	Points    int      `json:"points"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
}

// AnswerResultPayload goes to the submitter only; broadcasting it would
// leak the answer to players still deciding.
type AnswerResultPayload struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

// SeriesOverPayload is the terminal leaderboard.
type SeriesOverPayload struct {
	Leaderboard domain.Leaderboard `json:"leaderboard"`
}

// IntermediatePayload pairs the mid-series leaderboard with a roast.
type IntermediatePayload struct {
	Leaderboard domain.Leaderboard `json:"leaderboard"`
	Roast       string             `json:"roast"`
	Title       string             `json:"title"`
}

// ErrorPayload is unicast to the connection that caused the problem.
type ErrorPayload struct {
	Message string `json:"message"`
}
