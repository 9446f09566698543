package modexpbench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	base, err := ParseBigUint("4")
	require.NoError(t, err)
	exp, err := ParseBigUint("13")
	require.NoError(t, err)
	mod, err := ParseBigUint("497")
	require.NoError(t, err)

	r, err := ModExp(base, exp, mod)
	require.NoError(t, err)
	assert.Equal(t, "445", r.String())

	zero, err := ParseBigUint("0")
	require.NoError(t, err)
	_, err = ModExp(base, exp, zero)
	assert.Equal(t, ErrDivisionByZero, CodeOf(err))
}

func TestParseBigUintInvalid(t *testing.T) {
	_, err := ParseBigUint("12q")
	assert.Equal(t, ErrInvalidConfig, CodeOf(err))
}

func TestRunBenchmark(t *testing.T) {
	cfg := DefaultConfig().WithBits(64).WithRounds(4).WithSeed("facade")
	var out bytes.Buffer

	report, err := RunBenchmark(context.Background(), cfg, TextReporter(&out))
	require.NoError(t, err)
	assert.Len(t, report.Durations, 4)
	assert.Equal(t, "binary", report.Engine)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[4], "avg: "))
}

func TestRunBenchmarkErrors(t *testing.T) {
	_, err := RunBenchmark(context.Background(), DefaultConfig().WithRounds(-1), nil)
	assert.Equal(t, ErrInvalidConfig, CodeOf(err))

	_, err = RunBenchmark(context.Background(), DefaultConfig().WithEngine("gmp"), nil)
	assert.Equal(t, ErrUnsupportedEngine, CodeOf(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunBenchmark(ctx, DefaultConfig().WithBits(64).WithRounds(3), nil)
	assert.Equal(t, ErrCanceled, CodeOf(err))
}

func TestCompareEngines(t *testing.T) {
	a, err := LookupEngine("binary")
	require.NoError(t, err)
	b, err := LookupEngine("mathbig")
	require.NoError(t, err)

	cmp, err := CompareEngines(context.Background(), DefaultConfig().WithBits(128).WithRounds(3), a, b)
	require.NoError(t, err)
	assert.Equal(t, "binary", cmp.A.Engine)
	assert.Equal(t, "mathbig", cmp.B.Engine)
	assert.Contains(t, EngineNames(), "uint256")
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	pa, pb := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(pa, []byte("hello world"), 0o600))
	require.NoError(t, os.WriteFile(pb, []byte("hello_world"), 0o600))

	r, err := CompareFiles(pa, pb, true)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Mismatches)
	assert.Equal(t, []int{5}, r.Offsets)

	_, err = CompareFiles(pa, filepath.Join(dir, "missing"), false)
	assert.Equal(t, ErrIOFailure, CodeOf(err))
}

func TestLoadConfigMissingFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"), DefaultConfig())
	assert.Equal(t, ErrIOFailure, CodeOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
