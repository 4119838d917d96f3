package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/marbles/scene"
)

func TestParseVec2(t *testing.T) {
	v, err := parseVec2("1.5, -2")
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if v != (mgl64.Vec2{1.5, -2}) {
		t.Errorf("Expected (1.5,-2), got %v", v)
	}

	if _, err := parseVec2("1"); !errors.Is(err, scene.ErrBadVector) {
		t.Errorf("Expected ErrBadVector, got %v", err)
	}
	if _, err := parseVec2("a,b"); err == nil {
		t.Error("Expected error for non-numeric input")
	}
}

func TestResolveScene(t *testing.T) {
	sc, err := resolveScene("single", "0,0")
	if err != nil {
		t.Fatalf("Expected builtin scene, got %v", err)
	}
	if sc.Gravity != (mgl64.Vec2{}) {
		t.Errorf("Expected gravity override, got %v", sc.Gravity)
	}

	if _, err := resolveScene("nebula", ""); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[[particle]]\npos = [0.0, 0.0]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err = resolveScene(path, "")
	if err != nil {
		t.Fatalf("Expected file scene, got %v", err)
	}
	if len(sc.Particles) != 1 {
		t.Errorf("Expected 1 particle, got %d", len(sc.Particles))
	}
}

func TestRunHeadlessReproducible(t *testing.T) {
	log, _ := test.NewNullLogger()

	run := func() uint64 {
		sc, err := scene.Builtin("marbles")
		if err != nil {
			t.Fatal(err)
		}
		sum, err := runHeadless(sc, 240, log)
		if err != nil {
			t.Fatalf("Expected headless run, got %v", err)
		}
		return sum
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Expected identical checksums, got %016x and %016x", a, b)
	}
}

func TestSetupLogging(t *testing.T) {
	log, f, err := setupLogging("", false)
	if err != nil || f != nil {
		t.Fatalf("Expected discard logger, got file=%v err=%v", f, err)
	}
	if log.Out != io.Discard {
		t.Error("Expected interactive logs discarded without a path")
	}

	path := filepath.Join(t.TempDir(), "marbles.log")
	log, f, err = setupLogging(path, false)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	log.Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}
