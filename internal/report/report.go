package report

import (
	"github.com/polarkac/advent-of-code/internal/bench"
	"github.com/polarkac/advent-of-code/internal/puzzle"
)

// Answers renders part answers as a JSON array of {"part", "answer"}
// objects. Timings are left out so the result is deterministic.
func Answers(answers []puzzle.Answer) []any {
	out := make([]any, len(answers))
	for i, a := range answers {
		out[i] = map[string]any{
			"part":   a.Part,
			"answer": a.Value,
		}
	}
	return out
}

// Run renders the answers of one puzzle run.
func Run(p puzzle.Puzzle, answers []puzzle.Answer) map[string]any {
	return map[string]any{
		"year":    p.Year,
		"day":     p.Day,
		"title":   p.Title,
		"answers": Answers(answers),
	}
}

// Bench renders per-part benchmark statistics in nanoseconds.
func Bench(p puzzle.Puzzle, stats []bench.Stats) map[string]any {
	parts := make([]any, len(stats))
	for i, s := range stats {
		parts[i] = map[string]any{
			"part":    i + 1,
			"samples": s.Samples,
			"min_ns":  s.Min.Nanoseconds(),
			"max_ns":  s.Max.Nanoseconds(),
			"avg_ns":  s.Avg.Nanoseconds(),
		}
	}
	return map[string]any{
		"year":  p.Year,
		"day":   p.Day,
		"title": p.Title,
		"bench": parts,
	}
}

// Catalog renders the registered puzzles.
func Catalog(puzzles []puzzle.Puzzle) []any {
	out := make([]any, len(puzzles))
	for i, p := range puzzles {
		out[i] = map[string]any{
			"year":  p.Year,
			"day":   p.Day,
			"title": p.Title,
			"parts": len(p.Parts),
		}
	}
	return out
}
