package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/cursormon/internal/logger"
)

func TestNewLogger_DefaultOptions(t *testing.T) {
	t.Setenv("LOCALAPPDATA", t.TempDir())

	log, err := logger.NewLogger(logger.LoggerOptions{Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	logPath := log.GetLogPath()
	assert.Contains(t, logPath, "cursormon.log")
	assert.True(t, filepath.IsAbs(logPath), "Log path should be absolute")
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, filepath.Join(tmpDir, "cursormon"))
}

func TestNewLogger_CustomLogDir(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, filepath.Join(tmpDir, "cursormon.log"), log.GetLogPath())
}

func TestNewLogger_FallbackToUserProfile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	log, err := logger.NewLogger(logger.LoggerOptions{Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	expectedPath := filepath.Join(tmpDir, "AppData", "Local", "cursormon", "cursormon.log")
	assert.Equal(t, expectedPath, log.GetLogPath())
}

func TestLogger_ConsoleVerbosity(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "verbose", verbose: true, wantDebug: true},
		{name: "quiet", verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer

			log, err := logger.NewLogger(logger.LoggerOptions{
				LogDir:  t.TempDir(),
				Verbose: tt.verbose,
				Console: &console,
			})
			require.NoError(t, err)
			defer log.Close()

			log.Trace("trace line")
			log.Debug("moved cursor", slog.Int("display", 1))
			log.Warn("transfer failed", slog.Uint64("hwnd", 42))

			out := console.String()
			assert.NotContains(t, out, "trace line", "Trace must never reach the console")
			assert.Contains(t, out, "WARNING: transfer failed hwnd=42")

			if tt.wantDebug {
				assert.Contains(t, out, "VERBOSE: moved cursor display=1")
			} else {
				assert.NotContains(t, out, "moved cursor")
			}
		})
	}
}

func TestLogger_FileReceivesTrace(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: tmpDir, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	log.Trace("enumerated window", slog.Uint64("hwnd", 7))
	log.Info("hotkey registered")
	log.Close()

	data, err := os.ReadFile(log.GetLogPath())
	require.NoError(t, err)

	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "enumerated window")
	assert.Contains(t, string(data), "hotkey registered")
}

func TestPrintLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	opts := logger.LoggerOptions{LogDir: tmpDir}

	require.NoError(t, os.WriteFile(logger.GetLogPath(opts), []byte("line 1\nline 2\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, logger.PrintLogFile(&out, opts))
	assert.Equal(t, "line 1\nline 2\n", out.String())
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(&bytes.Buffer{}, logger.LoggerOptions{LogDir: t.TempDir()})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger_Close(t *testing.T) {
	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: t.TempDir(), Console: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		log.Close()
	})
}

func TestNoOpLogger(t *testing.T) {
	log := logger.NewNoOpLogger()

	assert.NotPanics(t, func() {
		log.Trace("test")
		log.Debug("test")
		log.Info("test")
		log.Warn("test")
		log.Error("test")
		log.Close()
	})
	assert.Empty(t, log.GetLogPath())
}
