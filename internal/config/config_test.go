package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/Epirun/internal/domain"
)

// --- Resolve Tests ---

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Country != "United_Kingdom" {
		t.Errorf("country = %q, want United_Kingdom", cfg.Country)
	}
	if cfg.SimulatorPath != "CovidSim.exe" {
		t.Errorf("simulator = %q", cfg.SimulatorPath)
	}
	if cfg.Phase != domain.PhaseResume {
		t.Errorf("phase = %v, want resume", cfg.Phase)
	}
	if !cfg.ReadOnly {
		t.Error("read-only should default to true")
	}
	if cfg.Threads < 2 {
		t.Errorf("threads = %d, want >= 2", cfg.Threads)
	}
	if cfg.Params.R0 != 3.0 {
		t.Errorf("R0 = %v, want 3.0", cfg.Params.R0)
	}
	if cfg.Params.Scenario != "PC7_CI_HQ_SD" {
		t.Errorf("scenario = %q", cfg.Params.Scenario)
	}
}

func TestResolve_DirsDerivedFromDataDir(t *testing.T) {
	cfg, err := Resolve(Options{DataDir: "/data/sim"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ParamDir != filepath.Join("/data/sim", "param_files") {
		t.Errorf("param dir = %q", cfg.ParamDir)
	}
	if cfg.OutputDir != filepath.Join("/data/sim", "output_files") {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.NetworkDir != filepath.Join("/data/sim", "network_files") {
		t.Errorf("network dir = %q", cfg.NetworkDir)
	}
	if cfg.LedgerPath != filepath.Join(cfg.NetworkDir, "epirun.db") {
		t.Errorf("ledger path = %q", cfg.LedgerPath)
	}
}

func TestResolve_ExplicitDirsWin(t *testing.T) {
	cfg, err := Resolve(Options{
		DataDir:   "/data/sim",
		ParamDir:  "/params",
		OutputDir: "/out",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ParamDir != "/params" || cfg.OutputDir != "/out" {
		t.Errorf("explicit dirs lost: %q %q", cfg.ParamDir, cfg.OutputDir)
	}
}

func TestResolve_InvalidFirstSetup(t *testing.T) {
	for _, v := range []string{"X", "yes", "y", "0"} {
		if _, err := Resolve(Options{FirstSetup: v}); err == nil {
			t.Errorf("firstsetup=%q should be rejected", v)
		}
	}
}

func TestResolve_InvalidReadOnly(t *testing.T) {
	if _, err := Resolve(Options{ReadOnly: "maybe"}); err == nil {
		t.Error("readonly=maybe should be rejected")
	}
}

func TestResolve_FirstSetupPhase(t *testing.T) {
	cfg, err := Resolve(Options{FirstSetup: "Y", ReadOnly: "N"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Phase != domain.PhaseSetup {
		t.Errorf("phase = %v, want setup", cfg.Phase)
	}
	if cfg.ReadOnly {
		t.Error("read-only should be false")
	}
}

func TestResolve_LedgerOff(t *testing.T) {
	cfg, err := Resolve(Options{LedgerPath: LedgerOff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LedgerPath != "" {
		t.Errorf("ledger path = %q, want empty", cfg.LedgerPath)
	}
}

// --- SimParams Tests ---

func TestDefaultSimParams(t *testing.T) {
	p := DefaultSimParams()

	if err := p.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if p.SpatialRate() != 1.5 {
		t.Errorf("spatial rate = %v, want 1.5", p.SpatialRate())
	}
	want := []int64{98798150, 729101, 17389101, 4797132}
	for i, seed := range want {
		if p.Seeds[i] != seed {
			t.Errorf("seed[%d] = %d, want %d", i, p.Seeds[i], seed)
		}
	}
}

func TestSimParams_SpatialRateIsHalfR0(t *testing.T) {
	p := DefaultSimParams()
	p.R0 = 2.4
	if p.SpatialRate() != 1.2 {
		t.Errorf("spatial rate = %v, want 1.2", p.SpatialRate())
	}
}

func TestLoadSimParams_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := "r0: 2.0\nquarantine_compliance: 0.8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadSimParams(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.R0 != 2.0 {
		t.Errorf("R0 = %v, want 2.0", p.R0)
	}
	if p.QuarantineCompliance != 0.8 {
		t.Errorf("CLP1 = %v, want 0.8", p.QuarantineCompliance)
	}
	// Остальные поля остаются по умолчанию.
	if p.Scenario != "PC7_CI_HQ_SD" {
		t.Errorf("scenario = %q", p.Scenario)
	}
	if len(p.Seeds) != 4 {
		t.Errorf("seeds = %v", p.Seeds)
	}
}

func TestLoadSimParams_BadValues(t *testing.T) {
	cases := map[string]string{
		"negative r0": "r0: -1\n",
		"bad seeds":   "seeds: [1, 2]\n",
		"no scenario": "scenario: \"\"\n",
	}

	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "params.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSimParams(path); err == nil {
			t.Errorf("%s: should fail", name)
		}
	}
}

func TestLoadSimParams_MissingFile(t *testing.T) {
	if _, err := LoadSimParams(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
