package results

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Ошибки загрузки таблицы результатов.
var (
	// ErrEmptyTable — файл не содержит заголовка или строк данных.
	ErrEmptyTable = errors.New("results table is empty")

	// ErrColumnNotFound — колонка с таким именем отсутствует.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRaggedRow — строка содержит не столько полей, сколько заголовок.
	ErrRaggedRow = errors.New("row has wrong number of fields")
)

// InfectedColumn — колонка пика инфицированных в output-файле.
const InfectedColumn = "I"

// Table — таблица результатов симулятора в памяти.
type Table struct {
	// Columns — имена колонок из заголовка, в порядке файла.
	Columns []string

	// Rows — строки данных; len(row) == len(Columns).
	Rows [][]float64
}

// Load читает tab-separated файл результатов.
//
// Первая непустая строка — заголовок; остальные строки — числовые
// данные. Любое нечисловое значение или расхождение числа полей —
// ошибка парсинга.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	t := &Table{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if t.Columns == nil {
			t.Columns = fields
			continue
		}

		if len(fields) != len(t.Columns) {
			return nil, fmt.Errorf("%s line %d: %w: got %d, want %d",
				path, lineNo, ErrRaggedRow, len(fields), len(t.Columns))
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %q: parse %q: %w",
					path, lineNo, t.Columns[i], field, err)
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	if t.Columns == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	return t, nil
}

// Column возвращает значения колонки по имени.
func (t *Table) Column(name string) ([]float64, error) {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Max возвращает максимум колонки. Таблица без строк данных —
// ошибка ErrEmptyTable.
func (t *Table) Max(name string) (float64, error) {
	values, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrEmptyTable
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// FormatValue форматирует значение статистики для вывода: целые
// значения без дробной части (как печатал оригинальный драйвер).
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
