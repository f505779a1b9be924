package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	flagFPS, flagSeed = 60, 0
	flagLogFile, flagLogLevel = "", "info"
	flagConfig, flagPreset = "", ""
	flagDefaults, flagTicks = false, 3600

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-file", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"shooter", "shooter_classic", "Battleship Shooter"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"effective", []string{"config"}, "drop_chance: 20"},
		{"classic preset", []string{"config", "--preset", "classic"}, "enabled: false"},
		{"defaults file", []string{"config", "--defaults"}, "powerups:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestConfigCommandCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("enemies:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "count: 3") {
		t.Errorf("custom enemy count not applied:\n%s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"config", "--preset", "insane"}},
		{"bad log level", []string{"--log-level", "loud", "list"}},
		{"missing config file", []string{"simulate", "--config", "/nonexistent/shooter.yaml"}},
		{"zero ticks", []string{"simulate", "--ticks", "0"}},
		{"unknown game", []string{"play", "tetris"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := execute(t, "simulate", "--ticks", "600", "--seed", "11")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := execute(t, "simulate", "--ticks", "600", "--seed", "11")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a != b {
		t.Errorf("same seed printed different results:\n%s\n---\n%s", a, b)
	}
	for _, want := range []string{"Outcome:", "Kills:", "Hash:"} {
		if !strings.Contains(a, want) {
			t.Errorf("summary missing %q:\n%s", want, a)
		}
	}
}

func TestSimulateTimeSeedIsReplayable(t *testing.T) {
	first, err := execute(t, "simulate", "--ticks", "300")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	var seed int64
	if _, err := fmt.Sscanf(first, "Seed: %d", &seed); err != nil {
		t.Fatalf("summary has no seed line: %v\n%s", err, first)
	}
	if seed == 0 {
		t.Fatal("seed 0 should be replaced by a time-based seed")
	}

	replay, err := execute(t, "simulate", "--ticks", "300", "--seed", strconv.FormatInt(seed, 10))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if replay != first {
		t.Errorf("replaying seed %d printed a different result:\n%s\n---\n%s", seed, first, replay)
	}
}

func TestSimulateClassicHidesStars(t *testing.T) {
	out, err := execute(t, "simulate", "--ticks", "60", "--preset", "classic")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if strings.Contains(out, "Stars:") {
		t.Errorf("classic summary should not list stars:\n%s", out)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.arcade/shooter.log", filepath.Join(home, ".arcade", "shooter.log")},
		{"~", home},
		{"/var/log/shooter.log", "/var/log/shooter.log"},
		{"~user/file", "~user/file"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shooter.log")
	l, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	l.Debug("hello", "tick", 1)
	if err := closer(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file content = %q", data)
	}
}

func TestNewLoggerUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	// A regular file where a directory is expected.
	l, closer, err := newLogger(filepath.Join(blocker, "shooter.log"), "info")
	if err != nil {
		t.Fatalf("unwritable log path should not fail: %v", err)
	}
	l.Info("dropped")
	if err := closer(); err != nil {
		t.Error(err)
	}
}
