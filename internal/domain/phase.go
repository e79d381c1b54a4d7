package domain

import (
	"errors"
	"fmt"
)

// Ошибки разбора режимных флагов.
var (
	// ErrInvalidPhase — значение --firstsetup не равно Y или N.
	ErrInvalidPhase = errors.New("first-setup flag must be Y or N")

	// ErrInvalidSwitch — значение Y/N-флага не распознано.
	ErrInvalidSwitch = errors.New("flag must be Y or N")
)

// Phase — фаза запуска симулятора.
//
// Первичная настройка (setup) генерирует бинарные кэши плотности
// населения и состояния сети; повторный запуск (resume) читает их.
type Phase string

const (
	// PhaseSetup — первый запуск: текстовый файл плотности на входе,
	// бинарные кэши на выходе.
	PhaseSetup Phase = "setup"

	// PhaseResume — повторный запуск: бинарные кэши на входе.
	PhaseResume Phase = "resume"
)

// ParsePhase разбирает значение флага --firstsetup.
//
// Оригинальный драйвер молча игнорировал нераспознанные значения и
// собирал команду без режимного блока. Здесь это жёсткая ошибка
// валидации: допустимы ровно два значения, Y и N.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "Y":
		return PhaseSetup, nil
	case "N":
		return PhaseResume, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidPhase, s)
	}
}

// ParseSwitch разбирает Y/N-флаг (например --readonly) в bool.
// Нераспознанное значение — ошибка валидации, не no-op.
func ParseSwitch(name, s string) (bool, error) {
	switch s {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w, got %q", name, ErrInvalidSwitch, s)
	}
}

// String возвращает строковое представление фазы.
func (p Phase) String() string {
	return string(p)
}
