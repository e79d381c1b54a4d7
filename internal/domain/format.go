package domain

import (
	"strconv"
	"strings"
)

// FormatParam форматирует числовой параметр симулятора так, как его
// записывал оригинальный драйвер: целые значения получают хвост ".0"
// (3.0 → "3.0", 1.5 → "1.5", 0.1 → "0.1").
//
// Формат входит в имена артефактов (R0=3.0, Network_X_T4_R3.0.bin),
// поэтому менять его нельзя без миграции существующих кэшей.
func FormatParam(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
