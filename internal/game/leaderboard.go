package game

import (
	"sort"

	"triviahost/internal/domain"
)

// ProjectLeaderboard derives the ranked scoreboard from the given
// players without mutating them. Ties keep the players' relative order,
// so two equal scores rank by who joined first.
func ProjectLeaderboard(players []*domain.Player) domain.Leaderboard {
	entries := make(domain.Leaderboard, 0, len(players))
	for _, p := range players {
		entries = append(entries, domain.LeaderboardEntry{
			Name:   p.Name,
			Score:  p.Score,
			Avatar: p.Avatar,
			Streak: p.Streak,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
