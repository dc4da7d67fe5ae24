package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

var rotatedName = regexp.MustCompile(`^vi-pong-\d{8}-\d{6}\.log$`)

// withDebugLog enables file logging inside a scratch directory and returns the live log path
func withDebugLog(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) = nil")
	}
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		f.Close()
	})
	return filepath.Join(logDir, logFileName)
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestSetupLoggingQuietWithoutDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("setupLogging(false) opened a file")
	}
	if log.Writer() != io.Discard {
		t.Error("log output not discarded without -debug")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("logs directory created without -debug: %v", err)
	}
}

func TestLogEventsWritesScores(t *testing.T) {
	path := withDebugLog(t)

	s := engine.NewState(engine.DefaultConfig(), vmath.NewFastRand(7))
	s.Frame = 412
	s.Score = engine.Score{Left: 3, Right: 1}
	s.Events = engine.EventLeftScored | engine.EventLeftPaddleHit
	logEvents(s)

	s.Frame = 900
	s.Score = engine.Score{Left: 3, Right: 2}
	s.Events = engine.EventRightScored
	logEvents(s)

	// Frames without a score stay out of the log
	s.Frame = 901
	s.Events = engine.EventWallHit
	logEvents(s)

	got := readLog(t, path)
	for _, want := range []string{"frame 412: left scores, 3-1", "frame 900: right scores, 3-2"} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "frame 901") {
		t.Errorf("wall hit was logged:\n%s", got)
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("debug log shares the terminal")
	}
}

func TestSetupLoggingRotatesOversizedLog(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, maxLogSize+1); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) = nil")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 || !rotatedName.MatchString(rotated[0]) {
		t.Fatalf("rotated files = %v, want one vi-pong-YYYYMMDD-HHMMSS.log", rotated)
	}

	info, err := os.Stat(filepath.Join(logDir, rotated[0]))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("rotated size = %d, want %d", info.Size(), maxLogSize+1)
	}
	if info, err := os.Stat(path); err != nil || info.Size() != 0 {
		t.Errorf("fresh log not empty after rotation: %v", err)
	}
}

func TestSetupLoggingAppendsUnderLimit(t *testing.T) {
	path := withDebugLog(t)
	log.Print("first run")
	log.SetOutput(io.Discard)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("second setupLogging(true) = nil")
	}
	defer f.Close()
	log.Print("second run")

	got := readLog(t, path)
	if !strings.Contains(got, "first run") || !strings.Contains(got, "second run") {
		t.Errorf("log not appended across runs:\n%s", got)
	}
	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("unexpected rotation under the size limit: %d files", len(entries))
	}
}
