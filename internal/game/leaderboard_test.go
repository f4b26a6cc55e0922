package game

import (
	"testing"

	"triviahost/internal/domain"
)

func TestProjectLeaderboardOrdersByScore(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register("c1", "Alice", "cat", false)
	reg.Register("c2", "Bob", "dog", false)
	reg.Register("c3", "Cara", "owl", false)

	setScore(t, reg, "c1", 300)
	setScore(t, reg, "c2", 300)
	setScore(t, reg, "c3", 500)

	for i := 0; i < 5; i++ {
		lb := ProjectLeaderboard(reg.Players())
		if lb[0].Name != "Cara" {
			t.Fatalf("expected Cara first, got %s", lb[0].Name)
		}
		// Equal scores keep join order on every call.
		if lb[1].Name != "Alice" || lb[2].Name != "Bob" {
			t.Fatalf("expected stable tie order Alice, Bob; got %s, %s", lb[1].Name, lb[2].Name)
		}
	}
}

func TestProjectLeaderboardIsPureRead(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register("c1", "Alice", "cat", false)
	setScore(t, reg, "c1", 100)

	_ = ProjectLeaderboard(reg.Players())

	p, _ := reg.Get("c1")
	if p.Score != 100 || p.Streak != 0 {
		t.Fatalf("projection mutated player state: %+v", p)
	}
}

func TestProjectLeaderboardCarriesAvatarAndStreak(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register("c1", "Alice", "cat", false)
	p, _ := reg.Get("c1")
	p.Score = 1000
	p.Streak = 2

	lb := ProjectLeaderboard(reg.Players())
	want := domain.LeaderboardEntry{Name: "Alice", Score: 1000, Avatar: "cat", Streak: 2}
	if lb[0] != want {
		t.Fatalf("expected %+v, got %+v", want, lb[0])
	}
}

func setScore(t *testing.T, reg *Registry, connID string, score int) {
	t.Helper()
	p, ok := reg.Get(connID)
	if !ok {
		t.Fatalf("player %s missing", connID)
	}
	p.Score = score
}
