package content

import (
	"fmt"
	"regexp"
	"strings"

	"triviahost/internal/domain"
)

// Free-text question import. The format is forgiving: blocks separated
// by blank lines or numbered headings, options as "A." through "D."
// lines, and an optional "Answer: X" key line. Anything unparseable is
// skipped or patched with placeholders; the parser never fails hard and
// may legitimately return zero questions.

var (
	numberedLine = regexp.MustCompile(`^\d+[\.)]`)
	promptPrefix = regexp.MustCompile(`(?i)^(\d+[\.:)]\s*|Q\d+[:.]\s*)`)
	optionLine   = regexp.MustCompile(`(?i)^[A-D][\.)]\s*`)
	answerKey    = regexp.MustCompile(`(?i)^(answer|correct)\s*:`)
)

// ParseText extracts question records from pasted free text.
func ParseText(text string) []domain.Question {
	var questions []domain.Question
	for _, block := range splitBlocks(text) {
		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// splitBlocks groups non-empty lines into question blocks. A blank line
// ends a block; a numbered line starts a new one even without a blank
// line before it.
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}
		if numberedLine.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func parseBlock(lines []string) (domain.Question, bool) {
	// A usable block needs a prompt and at least two option-ish lines.
	if len(lines) < 3 {
		return domain.Question{}, false
	}

	prompt := promptPrefix.ReplaceAllString(lines[0], "")
	if prompt == "" {
		return domain.Question{}, false
	}

	var options []string
	answer := 0
	for _, line := range lines[1:] {
		if answerKey.MatchString(line) {
			if idx, ok := parseAnswerKey(line); ok {
				answer = idx
			}
			continue
		}
		if optionLine.MatchString(line) {
			options = append(options, optionLine.ReplaceAllString(line, ""))
		}
	}

	return Normalize(domain.Question{Prompt: prompt, Options: options, Answer: answer}), true
}

// parseAnswerKey maps "Answer: B" style lines to an option index.
func parseAnswerKey(line string) (int, bool) {
	parts := strings.Split(line, ":")
	letter := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))
	if letter == "" {
		return 0, false
	}
	if idx := strings.IndexByte("ABCD", letter[0]); idx >= 0 {
		return idx, true
	}
	return 0, false
}

// Normalize pads or truncates a record to exactly four options and
// clamps the answer index into range, defaulting to the first option.
func Normalize(q domain.Question) domain.Question {
	for len(q.Options) < domain.OptionCount {
		q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
	}
	q.Options = q.Options[:domain.OptionCount]
	if q.Answer < 0 || q.Answer >= domain.OptionCount {
		q.Answer = 0
	}
	if q.Difficulty < 1 {
		q.Difficulty = 1
	}
	return q
}

// NormalizeAll sanitizes a client-supplied batch, dropping records with
// an empty prompt.
func NormalizeAll(in []domain.Question) []domain.Question {
	out := make([]domain.Question, 0, len(in))
	for _, q := range in {
		if strings.TrimSpace(q.Prompt) == "" {
			continue
		}
		out = append(out, Normalize(q))
	}
	return out
}
