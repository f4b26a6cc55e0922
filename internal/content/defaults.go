package content

import "triviahost/internal/domain"

// DefaultQuestions returns the built-in fallback set used when a series
// starts with no imported questions and no loadable pack. Callers get a
// fresh slice and may shuffle it freely.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		{Prompt: "Who is the CEO of Meta?", Options: []string{"Elon Musk", "Mark Zuckerberg", "Jeff Bezos", "Bill Gates"}, Answer: 1},
		{Prompt: "Capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, Answer: 2},
		{Prompt: "Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Venus"}, Answer: 1},
		{Prompt: "Bits in a Byte?", Options: []string{"4", "8", "16", "32"}, Answer: 1},
		{Prompt: "Largest Ocean?", Options: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, Answer: 3},
	}
}
