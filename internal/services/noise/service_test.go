package noise_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptonoise/internal/crypto"
	"cryptonoise/internal/crypto/randtest"
	"cryptonoise/internal/domain"
	corenoise "cryptonoise/internal/noise"
	noisesvc "cryptonoise/internal/services/noise"
)

type countingGenerator struct {
	calls atomic.Int64
	err   error
}

func (c *countingGenerator) Generate() (domain.Noise, error) {
	c.calls.Add(1)
	if c.err != nil {
		return "", c.err
	}
	return domain.Noise("ab!@cd#$ef%^gh&*"), nil
}

func TestGenerate_Batch(t *testing.T) {
	gen, err := corenoise.New(crypto.NewSecureSource(), corenoise.DefaultParams())
	require.NoError(t, err)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := noisesvc.New(gen, log, 3)

	out, err := svc.Generate(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, out, 25)

	seen := make(map[domain.Noise]bool)
	for _, n := range out {
		require.GreaterOrEqual(t, len(n), 15)
		require.LessOrEqual(t, len(n), 20)
		require.False(t, seen[n], "duplicate %q", n)
		seen[n] = true
		assert.NotContains(t, logs.String(), string(n), "value leaked to log")
		assert.Contains(t, logs.String(), crypto.Fingerprint(n))
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	svc := noisesvc.New(&countingGenerator{}, nil, 0)
	for _, n := range []int{0, -3} {
		_, err := svc.Generate(context.Background(), n)
		require.ErrorIs(t, err, noisesvc.ErrInvalidCount)
	}
}

func TestGenerate_FailureReturnsNoValues(t *testing.T) {
	gen, err := corenoise.New(
		&randtest.Failing{Source: randtest.Zero{}, Budget: 300},
		corenoise.DefaultParams(),
	)
	require.NoError(t, err)

	out, err := noisesvc.New(gen, nil, 1).Generate(context.Background(), 5)
	require.ErrorIs(t, err, crypto.ErrEntropyUnavailable)
	require.Nil(t, out)
}

func TestGenerate_CanceledContext(t *testing.T) {
	gen := &countingGenerator{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := noisesvc.New(gen, nil, 2).Generate(ctx, 10)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, out)
	require.Zero(t, gen.calls.Load())
}

func TestGenerate_GeneratorErrorLogged(t *testing.T) {
	boom := errors.New("boom")
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	_, err := noisesvc.New(&countingGenerator{err: boom}, log, 1).Generate(context.Background(), 3)
	require.ErrorIs(t, err, boom)
	require.True(t, strings.Contains(logs.String(), "noise generation failed"))
}

func TestGenerate_BatchQuietAtInfo(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	_, err := noisesvc.New(&countingGenerator{}, log, 2).Generate(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, logs.String())
}

func TestGenerate_ShortValuesLoggedWithoutFingerprint(t *testing.T) {
	gen, err := corenoise.New(crypto.NewSecureSource(), corenoise.Params{
		BaseLength:  16,
		SymbolRatio: 0.7,
		MinLength:   1,
		MaxLength:   4,
	})
	require.NoError(t, err)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = noisesvc.New(gen, log, 1).Generate(context.Background(), 5)
	require.NoError(t, err)
	require.Contains(t, logs.String(), "noise generated")
	require.NotContains(t, logs.String(), "fingerprint=")
}
