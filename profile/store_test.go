package profile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/pulse-runner/core"
)

// TestStoreRoundTrip verifies a saved skill value loads back exactly
func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.SaveSkill("p1", 0.42); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSkill("p1", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.42 {
		t.Errorf("loaded skill = %v, want 0.42", got)
	}
}

// TestStoreMissingProfile verifies a missing save yields the fallback
// without an error
func TestStoreMissingProfile(t *testing.T) {
	s := NewStore(t.TempDir())

	got, err := s.LoadSkill("nobody", 0.5)
	if err != nil {
		t.Fatalf("missing profile should not error: %v", err)
	}
	if got != 0.5 {
		t.Errorf("fallback = %v, want 0.5", got)
	}
}

// TestStoreCorruptProfile verifies unparseable saves surface
// ErrProfileCorrupt instead of a silent default
func TestStoreCorruptProfile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{skill"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := s.LoadSkill("bad", 0.5)
	if !errors.Is(err, core.ErrProfileCorrupt) {
		t.Errorf("error = %v, want ErrProfileCorrupt", err)
	}
}

// TestStoreOutOfRangeSkill verifies values outside [0, 1] are treated
// as corruption
func TestStoreOutOfRangeSkill(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	cases := []string{`{"skill": 1.5}`, `{"skill": -0.1}`}
	for _, body := range cases {
		if err := os.WriteFile(filepath.Join(dir, "p.json"), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.LoadSkill("p", 0.5); !errors.Is(err, core.ErrProfileCorrupt) {
			t.Errorf("%s: error = %v, want ErrProfileCorrupt", body, err)
		}
	}
}

// TestStoreCreatesDirectory verifies the first save creates the base
// directory
func TestStoreCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "saves")
	s := NewStore(base)

	if err := s.SaveSkill("p1", 0.7); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSkill("p1", 0)
	if err != nil || math.Abs(got-0.7) > 1e-12 {
		t.Errorf("load after nested save = (%v, %v)", got, err)
	}
}
