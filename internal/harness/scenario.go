package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/polarkac/advent-of-code/internal/puzzle"
)

// Scenario pins the expected answers of one puzzle for one input.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Year and Day select the puzzle.
	Year int `yaml:"year"`
	Day  int `yaml:"day"`

	// Input is the inline puzzle input.
	Input string `yaml:"input,omitempty"`

	// InputFile is a path to the puzzle input, relative to the scenario
	// file. Exactly one of Input and InputFile must be set.
	InputFile string `yaml:"input_file,omitempty"`

	// Expect lists the expected answers.
	Expect []Expectation `yaml:"expect"`
}

// Expectation is the expected answer of one part.
type Expectation struct {
	// Part is 1-based.
	Part int `yaml:"part"`

	// Answer is compared with the part's output as a string.
	Answer string `yaml:"answer"`
}

// Key returns the puzzle date the scenario targets.
func (s *Scenario) Key() puzzle.Key {
	return puzzle.Key{Year: s.Year, Day: s.Day}
}

// Text returns the puzzle input, reading InputFile when set.
func (s *Scenario) Text() (string, error) {
	if s.InputFile == "" {
		return s.Input, nil
	}
	data, err := os.ReadFile(s.InputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative input_file is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict decoding catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.InputFile != "" && !filepath.IsAbs(scenario.InputFile) {
		scenario.InputFile = filepath.Join(filepath.Dir(path), scenario.InputFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if err := s.Key().Validate(); err != nil {
		return err
	}

	switch {
	case s.Input == "" && s.InputFile == "":
		return fmt.Errorf("one of input or input_file is required")
	case s.Input != "" && s.InputFile != "":
		return fmt.Errorf("input and input_file are mutually exclusive")
	}

	if s.InputFile != "" {
		if _, err := os.Stat(s.InputFile); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", s.InputFile)
		}
	}

	if len(s.Expect) == 0 {
		return fmt.Errorf("expect list is required and must be non-empty")
	}

	seen := make(map[int]bool, len(s.Expect))
	for i, e := range s.Expect {
		if e.Part < 1 {
			return fmt.Errorf("expect[%d]: part must be 1 or greater", i)
		}
		if seen[e.Part] {
			return fmt.Errorf("expect[%d]: part %d listed twice", i, e.Part)
		}
		seen[e.Part] = true
		if e.Answer == "" {
			return fmt.Errorf("expect[%d]: answer is required", i)
		}
	}

	return nil
}
