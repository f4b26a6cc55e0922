package game

import (
	"strings"

	"triviahost/internal/domain"
)

// Registry owns the set of connected players. It is not safe for
// concurrent use on its own; the Session serializes access to it.
type Registry struct {
	players map[string]*domain.Player
	order   []string
	markers []string
}

// NewRegistry builds an empty registry. markers are the case-insensitive
// name substrings that grant moderator rights on join; pass nil for the
// classic "admin"/"host" pair.
func NewRegistry(markers []string) *Registry {
	if len(markers) == 0 {
		markers = []string{"admin", "host"}
	}
	return &Registry{
		players: make(map[string]*domain.Player),
		markers: markers,
	}
}

// classifyRole decides a joiner's role from the explicit flag and the
// privileged name markers.
func classifyRole(name string, forceAdmin bool, markers []string) domain.Role {
	if forceAdmin {
		return domain.RoleModerator
	}
	upper := strings.ToUpper(name)
	for _, marker := range markers {
		if strings.Contains(upper, strings.ToUpper(marker)) {
			return domain.RoleModerator
		}
	}
	return domain.RoleParticipant
}

// Register creates a player with a zeroed score. Registering an already
// known connection overwrites it in place, keeping its join position.
func (r *Registry) Register(connID, name, avatar string, forceAdmin bool) *domain.Player {
	p := &domain.Player{
		ConnID: connID,
		Name:   name,
		Avatar: avatar,
		Role:   classifyRole(name, forceAdmin, r.markers),
	}
	if _, known := r.players[connID]; !known {
		r.order = append(r.order, connID)
	}
	r.players[connID] = p
	return p
}

// Remove deletes the player; unknown connections are a no-op.
func (r *Registry) Remove(connID string) {
	if _, ok := r.players[connID]; !ok {
		return
	}
	delete(r.players, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns a player by connection id.
func (r *Registry) Get(connID string) (*domain.Player, bool) {
	p, ok := r.players[connID]
	return p, ok
}

// Players returns all players in join order.
func (r *Registry) Players() []*domain.Player {
	out := make([]*domain.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// Len reports the number of registered players.
func (r *Registry) Len() int {
	return len(r.players)
}

// ResetForNewSeries zeroes every player's score, streak and answered
// flag. Nobody is removed.
func (r *Registry) ResetForNewSeries() {
	for _, p := range r.players {
		p.Score = 0
		p.Streak = 0
		p.Answered = false
	}
}

// ClearAnswered drops the answered flag for every player; called when
// the round cursor advances.
func (r *Registry) ClearAnswered() {
	for _, p := range r.players {
		p.Answered = false
	}
}
