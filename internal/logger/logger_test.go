package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// reset restores the discarding logger after a test replaces it.
func reset(t *testing.T) {
	t.Cleanup(func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestConsoleWritesToStderr(t *testing.T) {
	reset(t)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	stderr := os.Stderr
	os.Stderr = w
	err = Init("info", "")
	os.Stderr = stderr
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("mesh built", zap.Int("triangles", 12))
	Debug("grid loaded")
	Sync()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read stderr: %v", err)
	}
	if !strings.Contains(string(out), "mesh built") || !strings.Contains(string(out), "triangles") {
		t.Errorf("expected build summary on stderr, got %q", out)
	}
	if strings.Contains(string(out), "grid loaded") {
		t.Errorf("debug entry leaked at info level: %q", out)
	}
}

func TestFileLevels(t *testing.T) {
	reset(t)
	dir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(dir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: path, MaxSizeMB: 1}, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("grid loaded")
			Info("mesh built")
			Warn("mesh not watertight")
			Error("command failed")

			content := readLog(t, path)
			for _, exp := range tt.expected {
				if !strings.Contains(content, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(content, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestNamedWritesComponent(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "named.log")

	if err := InitWithFileConfig("debug", DefaultFileConfig(path), false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("mesh").Debug("rows stitched", zap.Int("bands", 3))

	content := readLog(t, path)
	if !strings.Contains(content, " mesh ") || !strings.Contains(content, "bands") {
		t.Errorf("expected component name and fields in log, got %q", content)
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	reset(t)

	if err := InitWithFileConfig("debug", FileConfig{}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a discarding logger when no output is configured")
	}
	Info("dropped")
	Sync()
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/topomesh.log")

	if cfg.Path != "/tmp/topomesh.log" {
		t.Errorf("expected path /tmp/topomesh.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 || cfg.MaxBackups != 5 || cfg.MaxAgeDays != 30 {
		t.Errorf("unexpected rotation limits: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
