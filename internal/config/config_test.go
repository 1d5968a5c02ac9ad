package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/centered-intervals/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
intervals:
  - name: a
    start: 5
    end: 10
  - start: 1
    end: 3
    center: 3
`))
	require.NoError(t, err)
	require.Len(t, cfg.Intervals, 2)

	a := cfg.Intervals[0]
	require.Equal(t, "a", a.Name)
	require.Equal(t, int64(5), a.Start())
	require.Equal(t, int64(10), a.End())
	require.Equal(t, int64(7), a.Center())
	require.Equal(t, "a[5,10]", a.String())

	unnamed := cfg.Intervals[1]
	require.Equal(t, "#1", unnamed.Name)
	require.Equal(t, int64(3), unnamed.Center())
}

func TestParse_empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil)

	require.NoError(t, err)
	require.Empty(t, cfg.Intervals)
}

func TestParse_unknownField(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("intervals:\n  - begin: 1\n"))

	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "intervals.yaml")
	require.NoError(t, os.WriteFile(path, []byte("intervals:\n  - {name: x, start: -4, end: 4}\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []config.Entry{{Name: "x", Lo: -4, Hi: 4}}, cfg.Intervals)
}

func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := config.Load(path)

	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, path)
}
