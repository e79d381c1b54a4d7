package inputs

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
)

// testConfig создаёт конфигурацию с полным набором входных файлов
// для указанной страны во временном каталоге.
func testConfig(t *testing.T, country string) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{
		Country:    country,
		DataDir:    base,
		ParamDir:   filepath.Join(base, "param_files"),
		OutputDir:  filepath.Join(base, "output_files"),
		NetworkDir: filepath.Join(base, "network_files"),
		Threads:    4,
		Phase:      domain.PhaseResume,
		Params:     config.DefaultSimParams(),
	}

	writeFile(t, filepath.Join(base, "admin_units", country+"_admin.txt"), "admin")
	writeGzip(t, filepath.Join(base, "populations", "wpop_"+domain.Classify(country).WpopRoot()+".txt.gz"), "1 2 3\n")
	writeFile(t, filepath.Join(base, "populations", "USschools.txt"), "schools")
	family := domain.Classify(country).ParamFamily()
	writeFile(t, filepath.Join(cfg.ParamDir, family.PreParamFile()), "pp")
	writeFile(t, filepath.Join(cfg.ParamDir, "p_NoInt.txt"), "noint")
	writeFile(t, filepath.Join(cfg.ParamDir, "p_PC7_CI_HQ_SD.txt"), "controls")

	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// --- Resolve Tests ---

func TestResolve_UnitedKingdom(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")

	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Category != domain.CategoryEurope {
		t.Errorf("category = %v, want eur", r.Category)
	}
	if filepath.Base(r.WpopArchive) != "wpop_eur.txt.gz" {
		t.Errorf("wpop archive = %q", r.WpopArchive)
	}
	if filepath.Base(r.PreParamFile) != "preUK_R0=2.0.txt" {
		t.Errorf("pre-param = %q", r.PreParamFile)
	}
	if r.SchoolFile != "" {
		t.Errorf("school file should be empty for UK, got %q", r.SchoolFile)
	}
	if filepath.Base(r.NetworkBin) != "Network_United_Kingdom_T4_R3.0.bin" {
		t.Errorf("network bin = %q", r.NetworkBin)
	}
	if filepath.Base(r.OutputFile) != "United_Kingdom_PC7_CI_HQ_SD_R0=3.0.avNE.severity.xls" {
		t.Errorf("output file = %q", r.OutputFile)
	}
}

func TestResolve_UnitedStates(t *testing.T) {
	cfg := testConfig(t, "United_States")

	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(r.WpopArchive) != "wpop_usacan.txt.gz" {
		t.Errorf("wpop archive = %q", r.WpopArchive)
	}
	if filepath.Base(r.PreParamFile) != "preUS_R0=2.0.txt" {
		t.Errorf("pre-param = %q", r.PreParamFile)
	}
	if filepath.Base(r.SchoolFile) != "USschools.txt" {
		t.Errorf("school file = %q", r.SchoolFile)
	}
}

func TestResolve_MissingAdminFile(t *testing.T) {
	cfg := testConfig(t, "United_Kingdom")
	if err := os.Remove(filepath.Join(cfg.DataDir, "admin_units", "United_Kingdom_admin.txt")); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("expected error")
	}

	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T", err)
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Error("error should wrap ErrMissingInput")
	}
	if !strings.Contains(missing.Describe(), missing.Path) {
		t.Error("diagnostic must contain the attempted path")
	}
	if !strings.Contains(missing.Describe(), "admin file") {
		t.Errorf("diagnostic = %q", missing.Describe())
	}
}

func TestResolve_MissingSchoolFile_USOnly(t *testing.T) {
	cfg := testConfig(t, "United_States")
	if err := os.Remove(filepath.Join(cfg.DataDir, "populations", "USschools.txt")); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(cfg); err == nil {
		t.Error("missing school file must fail for United_States")
	}

	// Для остальных стран файл школ не обязателен.
	cfgUK := testConfig(t, "United_Kingdom")
	if err := os.Remove(filepath.Join(cfgUK.DataDir, "populations", "USschools.txt")); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(cfgUK); err != nil {
		t.Errorf("UK must not require a school file: %v", err)
	}
}

func TestResolve_MissingParamFiles(t *testing.T) {
	for _, name := range []string{"preUK_R0=2.0.txt", "p_NoInt.txt", "p_PC7_CI_HQ_SD.txt"} {
		cfg := testConfig(t, "United_Kingdom")
		if err := os.Remove(filepath.Join(cfg.ParamDir, name)); err != nil {
			t.Fatal(err)
		}

		var missing *MissingInputError
		_, err := Resolve(cfg)
		if !errors.As(err, &missing) {
			t.Fatalf("%s: error = %v", name, err)
		}
		if missing.Dir != cfg.ParamDir {
			t.Errorf("%s: dir = %q, want param dir", name, missing.Dir)
		}
	}
}
