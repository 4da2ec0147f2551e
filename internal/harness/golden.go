package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/polarkac/advent-of-code/internal/puzzle"
	"github.com/polarkac/advent-of-code/internal/report"
)

// GoldenSuffix is the extension of snapshot files.
const GoldenSuffix = ".golden"

// Snapshot captures the computed answers of a scenario run.
// All fields use canonical JSON serialization for deterministic comparison.
type Snapshot struct {
	ScenarioName string
	Key          puzzle.Key
	Parts        []PartResult
}

// NewSnapshot builds the snapshot of a scenario run.
func NewSnapshot(scenario *Scenario, result *Result) Snapshot {
	return Snapshot{
		ScenarioName: scenario.Name,
		Key:          scenario.Key(),
		Parts:        result.Parts,
	}
}

// toCanonicalMap converts a Snapshot to a map[string]any for canonical JSON
// serialization.
func (s Snapshot) toCanonicalMap() map[string]any {
	parts := make([]any, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = map[string]any{
			"part":   p.Part,
			"answer": p.Answer,
		}
	}
	return map[string]any{
		"scenario": s.ScenarioName,
		"year":     s.Key.Year,
		"day":      s.Key.Day,
		"parts":    parts,
	}
}

// Marshal returns the canonical JSON form of the snapshot.
func (s Snapshot) Marshal() ([]byte, error) {
	return report.MarshalCanonical(s.toCanonicalMap())
}

// GoldenPath returns the snapshot file of a scenario inside dir.
func GoldenPath(dir string, scenario *Scenario) string {
	return filepath.Join(dir, scenario.Name+GoldenSuffix)
}

// WriteGolden stores the snapshot of result as the scenario's golden file.
func WriteGolden(dir string, scenario *Scenario, result *Result) error {
	data, err := NewSnapshot(scenario, result).Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(GoldenPath(dir, scenario), data, 0o644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether result matches the scenario's golden file.
// It returns os.ErrNotExist (wrapped) when there is no golden file.
func CompareGolden(dir string, scenario *Scenario, result *Result) (bool, error) {
	golden, err := os.ReadFile(GoldenPath(dir, scenario))
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}
	current, err := NewSnapshot(scenario, result).Marshal()
	if err != nil {
		return false, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return bytes.Equal(golden, current), nil
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, reg *puzzle.Registry, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(reg, scenario)
	if err != nil {
		return nil, err
	}

	data, err := NewSnapshot(scenario, result).Marshal()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
