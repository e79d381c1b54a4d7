package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/Epirun/internal/domain"
)

// --- Stager Tests ---

func TestStager_DecompressesPopulation(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := NewStager(nil).Stage(cfg, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(r.WpopText)
	if err != nil {
		t.Fatalf("decompressed file missing: %v", err)
	}
	if string(content) != "1 2 3\n" {
		t.Errorf("content = %q", content)
	}

	if _, err := os.Stat(cfg.OutputDir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestStager_OverwritesExistingText(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, r.WpopText, "stale content")
	if err := NewStager(nil).Stage(cfg, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, _ := os.ReadFile(r.WpopText)
	if string(content) != "1 2 3\n" {
		t.Errorf("stale content survived: %q", content)
	}
}

func TestStager_FirstSetupRemovesCaches(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")
	cfg.Phase = domain.PhaseSetup

	r, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, r.WpopBin, "old bin")
	writeFile(t, r.NetworkBin, "old network")

	if err := NewStager(nil).Stage(cfg, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(r.WpopBin); err == nil {
		t.Error("stale wpop bin should be removed")
	}
	if _, err := os.Stat(r.NetworkBin); err == nil {
		t.Error("stale network bin should be removed")
	}
	// Текстовый файл удаляется и сразу регенерируется распаковкой.
	if _, err := os.Stat(r.WpopText); err != nil {
		t.Errorf("wpop text should be regenerated: %v", err)
	}
}

func TestStager_ResumeKeepsCaches(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")

	r, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, r.WpopBin, "bin")
	writeFile(t, r.NetworkBin, "network")

	if err := NewStager(nil).Stage(cfg, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{r.WpopBin, r.NetworkBin} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("cache %s should survive resume staging", filepath.Base(path))
		}
	}
}

func TestTryRemove_MissingFileIsNotAnError(t *testing.T) {
	if err := tryRemove(filepath.Join(t.TempDir(), "does-not-exist")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
