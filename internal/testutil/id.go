package testutil

// FixedIDGenerator returns the same trace id every time.
//
// This enables golden comparison of JSON command output, which otherwise
// carries a fresh UUID per invocation.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id. If id is empty, Generate
// returns "trace-fixed".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "trace-fixed"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
