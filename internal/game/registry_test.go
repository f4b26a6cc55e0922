package game

import (
	"testing"

	"triviahost/internal/domain"
)

func TestRegisterClassifiesRole(t *testing.T) {
	r := NewRegistry(nil)

	if p := r.Register("c1", "Alice", "", false); p.Role != domain.RoleParticipant {
		t.Fatalf("expected participant, got %s", p.Role)
	}
	if p := r.Register("c2", "Bob", "", true); p.Role != domain.RoleModerator {
		t.Fatalf("expected moderator via explicit flag, got %s", p.Role)
	}
	if p := r.Register("c3", "quiz ADMIN", "", false); p.Role != domain.RoleModerator {
		t.Fatalf("expected moderator via name marker, got %s", p.Role)
	}
	if p := r.Register("c4", "the host", "", false); p.Role != domain.RoleModerator {
		t.Fatalf("expected moderator via host marker, got %s", p.Role)
	}
}

func TestRegisterCustomMarkers(t *testing.T) {
	r := NewRegistry([]string{"teacher"})

	if p := r.Register("c1", "Math Teacher", "", false); p.Role != domain.RoleModerator {
		t.Fatalf("expected moderator via custom marker, got %s", p.Role)
	}
	if p := r.Register("c2", "AdminAlice", "", false); p.Role != domain.RoleParticipant {
		t.Fatalf("custom markers should replace defaults, got %s", p.Role)
	}
}

func TestRegisterOverwritesDuplicateConn(t *testing.T) {
	r := NewRegistry(nil)

	r.Register("c1", "Alice", "", false)
	r.Register("c2", "Bob", "", false)
	r.Register("c1", "Alicia", "", false)

	if r.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", r.Len())
	}
	players := r.Players()
	if players[0].Name != "Alicia" || players[1].Name != "Bob" {
		t.Fatalf("expected overwrite in place keeping order, got %q then %q", players[0].Name, players[1].Name)
	}
}

func TestRemoveIsNoOpForUnknown(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("c1", "Alice", "", false)

	r.Remove("nope")
	r.Remove("c1")
	r.Remove("c1")

	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestResetForNewSeries(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("c1", "Alice", "", false)
	r.Register("c2", "Bob", "", false)

	for _, p := range r.Players() {
		p.Score = 4200
		p.Streak = 3
		p.Answered = true
	}

	r.ResetForNewSeries()

	if r.Len() != 2 {
		t.Fatalf("reset must not remove players, got %d", r.Len())
	}
	for _, p := range r.Players() {
		if p.Score != 0 || p.Streak != 0 || p.Answered {
			t.Fatalf("expected zeroed state, got %+v", p)
		}
	}
}
