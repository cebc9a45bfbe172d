package noise

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cryptonoise/internal/crypto"
	"cryptonoise/internal/domain"
)

// DefaultWorkers bounds concurrent generations when New is given zero.
const DefaultWorkers = 4

var (
	// ErrInvalidCount is returned when fewer than one value is requested.
	ErrInvalidCount = errors.New("count must be at least 1")
)

// Service generates one or more independent noise values.
type Service struct {
	gen     domain.NoiseGenerator
	log     *slog.Logger
	workers int
}

// New returns a service over gen. A nil logger discards output and a
// non-positive workers value uses DefaultWorkers.
func New(gen domain.NoiseGenerator, log *slog.Logger, workers int) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{gen: gen, log: log, workers: workers}
}

// Generate returns count values in slot order.
//
// The first failure cancels outstanding work and no values are returned, so a
// caller never sees a partial batch.
func (s *Service) Generate(ctx context.Context, count int) ([]domain.Noise, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	out := make([]domain.Noise, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := s.gen.Generate()
			if err != nil {
				s.log.Error("noise generation failed", "slot", i, "error", err)
				return err
			}
			out[i] = n
			attrs := []any{"slot", i, "length", len(n)}
			if fp := crypto.Fingerprint(n); fp != "" {
				attrs = append(attrs, "fingerprint", fp)
			}
			s.log.Debug("noise generated", attrs...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.log.Debug("noise batch ready", "count", count)
	return out, nil
}
