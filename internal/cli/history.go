package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
	"github.com/shaiso/Epirun/internal/ledger"
	"github.com/shaiso/Epirun/internal/results"
)

// NewHistoryCmd создаёт команду history — список записанных запусков.
func NewHistoryCmd(outputFn func() *Output) *cobra.Command {
	var opts config.Options
	var country string
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded simulator runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			cfg, err := config.Resolve(opts)
			if err != nil {
				return err
			}
			if cfg.LedgerPath == "" {
				return errors.New("run history is disabled (--ledger off)")
			}

			db, err := ledger.Open(cfg.LedgerPath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := ledger.NewRunRepo(db).List(cmd.Context(), ledger.RunFilter{
				Country: country,
				Status:  domain.RunStatus(status),
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			headers := []string{"ID", "COUNTRY", "SCENARIO", "PHASE", "STATUS", "PEAK_I", "CREATED"}
			rows := make([][]string, len(runs))
			for i, r := range runs {
				peak := ""
				if r.Status == domain.RunStatusSucceeded {
					peak = results.FormatValue(r.PeakInfected)
				}
				rows[i] = []string{
					r.ID.String(),
					r.Country,
					r.Scenario,
					r.Phase.String(),
					r.Status.String(),
					peak,
					r.CreatedAt.Format(time.RFC3339),
				}
			}

			out.Print(headers, rows, runs)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DataDir, "datadir", "", "Directory at the root of the input data")
	cmd.Flags().StringVar(&opts.NetworkDir, "networkdir", "", "Directory with network data (ledger location)")
	cmd.Flags().StringVar(&opts.LedgerPath, "ledger", "", "Run history SQLite file")
	cmd.Flags().StringVar(&country, "country", "", "Filter by country")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (PENDING, RUNNING, SUCCEEDED, FAILED)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")

	return cmd
}
