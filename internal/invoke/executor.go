package invoke

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Executor запускает симулятор дочерним процессом.
//
// Вывод симулятора наследуется (stdout/stderr процесса-оркестратора),
// выполнение блокирующее, без таймаута и без повторов.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor создаёт Executor.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// Run выполняет Invocation и ждёт завершения.
//
// Ненулевой код выхода возвращается как *SimulatorError; ошибка
// запуска (исполняемый файл не найден и т.п.) — как обёрнутый
// ErrSimulatorStart.
func (e *Executor) Run(ctx context.Context, inv *Invocation) error {
	e.logger.Info("running simulator", "command", inv.CommandLine())

	cmd := exec.CommandContext(ctx, inv.Exe, inv.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &SimulatorError{ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("%w: %s: %v", ErrSimulatorStart, inv.Exe, err)
	}

	return nil
}
