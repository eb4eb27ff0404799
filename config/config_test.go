package config

import (
	"os"
	"path/filepath"
	"testing"

	"elfrevenge/highscore"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.ScoresPath != highscore.DefaultPath {
		t.Errorf("ScoresPath = %q, want %q", s.ScoresPath, highscore.DefaultPath)
	}
	if s.TPS != 60 {
		t.Errorf("TPS = %d, want 60", s.TPS)
	}
	if s.Mute || s.ProfileOnDrop {
		t.Error("audio should be on and profiling off by default")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvScoresPath, "/tmp/elf/.scores")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvTPS, "30")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvProfileOnDrop, "1")

	s := FromEnv()
	if s.ScoresPath != "/tmp/elf/.scores" {
		t.Errorf("ScoresPath = %q", s.ScoresPath)
	}
	if !s.Mute || !s.ProfileOnDrop {
		t.Error("boolean overrides not applied")
	}
	if s.TPS != 30 || s.Seed != 1234 {
		t.Errorf("TPS = %d, Seed = %d, want 30 and 1234", s.TPS, s.Seed)
	}
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvMute, "loud")
	t.Setenv(EnvTPS, "-5")
	t.Setenv(EnvSeed, "abc")

	s := FromEnv()
	def := Default()
	if s.Mute != def.Mute || s.TPS != def.TPS || s.Seed != def.Seed {
		t.Errorf("malformed values changed settings: %+v", s)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLogPath+"=elf.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvLogPath) })

	s := Load(path)
	if s.LogPath != "elf.log" {
		t.Errorf("LogPath = %q, want elf.log from the env file", s.LogPath)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "absent.env"))
	if s.TPS != Default().TPS {
		t.Errorf("missing env file changed settings: %+v", s)
	}
}

func TestNewRandIsSeeded(t *testing.T) {
	s := Default()
	s.Seed = 7
	a, b := s.NewRand(), s.NewRand()
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d with the same seed", i, x, y)
		}
	}
}

func TestOpenLog(t *testing.T) {
	s := Default()
	w, closeLog, err := s.OpenLog()
	if err != nil || w == nil || closeLog == nil {
		t.Fatalf("OpenLog without a path = %v, %v", w, err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Errorf("discard writer failed: %v", err)
	}

	s.LogPath = filepath.Join(t.TempDir(), "elf.log")
	w, closeLog, err = s.OpenLog()
	if err != nil {
		t.Fatalf("OpenLog(%s): %v", s.LogPath, err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(s.LogPath)
	if err != nil || string(got) != "hello\n" {
		t.Errorf("log file = %q, %v", got, err)
	}

	s.LogPath = filepath.Join(t.TempDir(), "missing", "elf.log")
	if _, closeLog, err = s.OpenLog(); err == nil {
		t.Error("OpenLog into a missing directory should fail")
	}
	if closeLog == nil {
		t.Error("close func should never be nil")
	}
}
