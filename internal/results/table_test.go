package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeResults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.avNE.severity.xls")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// --- Load Tests ---

func TestLoad_TabSeparated(t *testing.T) {
	path := writeResults(t, "t\tS\tI\tR\n0\t100\t10\t0\n1\t60\t45\t5\n2\t40\t30\t30\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Columns) != 4 {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(table.Rows))
	}

	infected, err := table.Column("I")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{10, 45, 30}
	for i, v := range want {
		if infected[i] != v {
			t.Errorf("I[%d] = %v, want %v", i, infected[i], v)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.xls")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeResults(t, "")
	if _, err := Load(path); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestLoad_MalformedValue(t *testing.T) {
	path := writeResults(t, "t\tI\n0\tnot-a-number\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed value should fail")
	}
}

func TestLoad_RaggedRow(t *testing.T) {
	path := writeResults(t, "t\tI\n0\t10\t99\n")
	if _, err := Load(path); !errors.Is(err, ErrRaggedRow) {
		t.Errorf("error = %v, want ErrRaggedRow", err)
	}
}

// --- Max Tests ---

func TestMax_InfectedColumn(t *testing.T) {
	path := writeResults(t, "t\tI\n0\t10\n1\t45\n2\t30\n")

	table, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	max, err := table.Max(InfectedColumn)
	if err != nil {
		t.Fatal(err)
	}
	if max != 45 {
		t.Errorf("max = %v, want 45", max)
	}
}

func TestMax_UnknownColumn(t *testing.T) {
	table := &Table{Columns: []string{"t"}, Rows: [][]float64{{1}}}
	if _, err := table.Max("I"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("error = %v, want ErrColumnNotFound", err)
	}
}

func TestMax_NoRows(t *testing.T) {
	table := &Table{Columns: []string{"I"}}
	if _, err := table.Max("I"); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(45); got != "45" {
		t.Errorf("FormatValue(45) = %q, want 45", got)
	}
	if got := FormatValue(45.5); got != "45.5" {
		t.Errorf("FormatValue(45.5) = %q", got)
	}
}
