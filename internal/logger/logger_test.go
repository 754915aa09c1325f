package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{}))
	require.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInitWriter(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug}))
	L.Debug("loaded save", "path", "Hero.d2s")
	require.Contains(t, out.String(), "loaded save")
	require.Contains(t, out.String(), "path=Hero.d2s")
}

func TestInitLogDirAndRetention(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	dir := t.TempDir()
	stale := filepath.Join(dir, logPrefix+time.Now().AddDate(0, 0, -retentionDays-2).Format(time.DateOnly)+logSuffix)
	keep := filepath.Join(dir, "notes.log")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(keep, []byte("mine"), 0o644))

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelInfo}))
	L.Info("wrote save", "bytes", 1024)

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(keep)
	require.NoError(t, err)

	today := filepath.Join(dir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix)
	data, err := os.ReadFile(today)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"wrote save"`)
}
