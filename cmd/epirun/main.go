// Epirun — драйвер примеров CovidSim: готовит входные файлы,
// запускает симулятор и печатает пик инфицированных.
//
// Использование:
//
//	epirun [--json] <command> [flags]
//
// Команды:
//
//	run      Подготовить входы, запустить симулятор, вывести пик
//	history  Показать записанные запуски
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Epirun/internal/cli"
	"github.com/shaiso/Epirun/internal/inputs"
	"github.com/shaiso/Epirun/internal/invoke"
	"github.com/shaiso/Epirun/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "epirun",
		Short:         "Epirun — CovidSim sample run orchestrator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewRunCmd(outputFn, logger),
		cli.NewHistoryCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode печатает диагностику и выбирает код выхода процесса:
// 1 — отсутствующий входной файл и прочие ошибки, код симулятора —
// как есть при его падении.
func exitCode(err error) int {
	var missing *inputs.MissingInputError
	if errors.As(err, &missing) {
		// Трёхстрочная диагностика оригинального драйвера, в stdout.
		fmt.Println(missing.Describe())
		return 1
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var simErr *invoke.SimulatorError
	if errors.As(err, &simErr) && simErr.ExitCode > 0 {
		return simErr.ExitCode
	}
	return 1
}
