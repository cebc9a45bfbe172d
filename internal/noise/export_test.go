package noise

import "cryptonoise/internal/domain"

// GenerateTrace exposes the intermediate base sequence to tests.
func GenerateTrace(g *Generator) (domain.Trace, error) {
	_, tr, err := g.generate(true)
	return tr, err
}
