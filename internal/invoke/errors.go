package invoke

import (
	"errors"
	"fmt"
)

// Ошибки стадии выполнения.
var (
	// ErrSimulatorFailed — симулятор завершился с ненулевым кодом.
	ErrSimulatorFailed = errors.New("simulator exited with non-zero status")

	// ErrSimulatorStart — симулятор не удалось запустить.
	ErrSimulatorStart = errors.New("failed to start simulator")
)

// SimulatorError — ненулевой код выхода дочернего процесса.
// Код пробрасывается как код выхода самого оркестратора.
type SimulatorError struct {
	ExitCode int
}

// Error реализует интерфейс error.
func (e *SimulatorError) Error() string {
	return fmt.Sprintf("simulator exited with code %d", e.ExitCode)
}

// Unwrap возвращает базовую ошибку.
func (e *SimulatorError) Unwrap() error {
	return ErrSimulatorFailed
}
