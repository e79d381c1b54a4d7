package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
	"github.com/shaiso/Epirun/internal/ledger"
	"github.com/shaiso/Epirun/internal/orchestrator"
	"github.com/shaiso/Epirun/internal/results"
)

// NewRunCmd создаёт команду run — полный конвейер запуска симулятора.
func NewRunCmd(outputFn func() *Output, logger *slog.Logger) *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Prepare inputs, run the simulator and report peak infections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			cfg, err := config.Resolve(opts)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var runs *ledger.RunRepo
			if cfg.LedgerPath != "" {
				db, err := ledger.Open(cfg.LedgerPath)
				if err != nil {
					// История — вспомогательная: её недоступность
					// не должна блокировать запуск.
					logger.Warn("ledger unavailable, history disabled", "error", err)
				} else {
					defer db.Close()
					runs = ledger.NewRunRepo(db)
				}
			}

			orch := orchestrator.New(orchestrator.Config{
				RunConfig: cfg,
				Runs:      runs,
				Logger:    logger,
			})

			out.Success(fmt.Sprintf("Intervention: %s %s %s",
				cfg.Country, cfg.Params.Scenario, domain.FormatParam(cfg.Params.R0)))

			report, err := orch.Execute(cmd.Context())
			if err != nil {
				return err
			}

			out.Value(results.FormatValue(report.PeakInfected), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Country, "country", "", "Country to run the sample for (default United_Kingdom)")
	cmd.Flags().StringVar(&opts.SimulatorPath, "covidsim", "", "Location of the CovidSim binary (default CovidSim.exe)")
	cmd.Flags().StringVar(&opts.DataDir, "datadir", "", "Directory at the root of the input data")
	cmd.Flags().StringVar(&opts.ParamDir, "paramdir", "", "Directory with input parameter files")
	cmd.Flags().StringVar(&opts.OutputDir, "outputdir", "", "Directory to store output data")
	cmd.Flags().StringVar(&opts.NetworkDir, "networkdir", "", "Directory to store network data and bins")
	cmd.Flags().IntVar(&opts.Threads, "threads", 0, "Number of threads to use (default: CPU count)")
	cmd.Flags().StringVar(&opts.FirstSetup, "firstsetup", "", "Regenerate network and population caches, Y or N (default N)")
	cmd.Flags().StringVar(&opts.ReadOnly, "readonly", "", "Skip execution and only summarize existing results, Y or N (default Y)")
	cmd.Flags().StringVar(&opts.ParamsFile, "params", "", "YAML file with simulation parameters (R0, scenario, seeds, CLP)")
	cmd.Flags().StringVar(&opts.LedgerPath, "ledger", "", "Run history SQLite file ('off' to disable)")
	cmd.Flags().StringVar(&opts.PushGateway, "push-gateway", "", "Prometheus Pushgateway URL for run metrics")

	return cmd
}
