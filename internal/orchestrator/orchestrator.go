package orchestrator

import (
	"context"
	"log/slog"

	"github.com/shaiso/Epirun/internal/config"
	"github.com/shaiso/Epirun/internal/domain"
	"github.com/shaiso/Epirun/internal/inputs"
	"github.com/shaiso/Epirun/internal/invoke"
	"github.com/shaiso/Epirun/internal/ledger"
	"github.com/shaiso/Epirun/internal/results"
	"github.com/shaiso/Epirun/internal/telemetry"
)

// Invoker — стадия выполнения симулятора.
// Реализуется invoke.Executor; в тестах подменяется заглушкой.
type Invoker interface {
	Run(ctx context.Context, inv *invoke.Invocation) error
}

// Orchestrator выполняет конвейер одного запуска.
type Orchestrator struct {
	cfg     *config.Config
	stager  *inputs.Stager
	invoker Invoker
	runs    *ledger.RunRepo
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Config — зависимости Orchestrator.
type Config struct {
	// RunConfig — разрешённая конфигурация запуска.
	RunConfig *config.Config

	// Invoker — стадия выполнения; nil — реальный invoke.Executor.
	Invoker Invoker

	// Runs — ledger истории запусков; nil — история отключена.
	Runs *ledger.RunRepo

	// Metrics — метрики запуска; nil — создаются свои.
	Metrics *telemetry.Metrics

	// Logger — логгер; nil — slog.Default().
	Logger *slog.Logger
}

// Report — итог успешного запуска.
type Report struct {
	// Run — финализированная запись запуска.
	Run *domain.Run

	// PeakInfected — максимум колонки "I" output-файла.
	PeakInfected float64

	// OutputFile — путь прочитанного output-файла.
	OutputFile string
}

// New создаёт Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	invoker := cfg.Invoker
	if invoker == nil {
		invoker = invoke.NewExecutor(logger)
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetrics()
	}

	return &Orchestrator{
		cfg:     cfg.RunConfig,
		stager:  inputs.NewStager(logger),
		invoker: invoker,
		runs:    cfg.Runs,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет конвейер запуска от разрешения входных файлов до
// итоговой статистики.
//
// Любая ошибка стадии терминальна для запуска: run финализируется со
// статусом FAILED, ошибка возвращается вызывающему без повторов и
// частичных результатов.
func (o *Orchestrator) Execute(ctx context.Context) (*Report, error) {
	run := domain.NewRun(
		o.cfg.Country,
		o.cfg.Params.Scenario,
		o.cfg.Params.R0,
		o.cfg.Phase,
		o.cfg.ReadOnly,
	)

	logger := telemetry.WithRunID(telemetry.WithCountry(o.logger, run.Country), run.ID.String())
	logger.Info("run starting",
		"scenario", run.Scenario,
		"r0", run.R0,
		"phase", run.Phase.String(),
		"read_only", run.ReadOnly,
	)

	o.record(ctx, run, logger)

	resolved, err := inputs.Resolve(o.cfg)
	if err != nil {
		return nil, o.fail(ctx, run, logger, err)
	}
	logger.Debug("inputs resolved",
		"category", resolved.Category.String(),
		"admin_file", resolved.AdminFile,
		"output_file", resolved.OutputFile,
	)

	if err := o.stager.Stage(o.cfg, resolved); err != nil {
		return nil, o.fail(ctx, run, logger, err)
	}

	inv := invoke.Build(o.cfg, resolved)

	run.MarkRunning()
	o.record(ctx, run, logger)

	if o.cfg.ReadOnly {
		logger.Info("read-only mode, skipping simulator execution")
	} else {
		if err := o.invoker.Run(ctx, inv); err != nil {
			return nil, o.fail(ctx, run, logger, err)
		}
	}

	table, err := results.Load(resolved.OutputFile)
	if err != nil {
		return nil, o.fail(ctx, run, logger, err)
	}

	peak, err := table.Max(results.InfectedColumn)
	if err != nil {
		return nil, o.fail(ctx, run, logger, err)
	}

	run.MarkSucceeded(peak)
	o.finalize(ctx, run, logger)

	logger.Info("run finished", "peak_infected", peak, "duration", run.Duration())

	return &Report{
		Run:          run,
		PeakInfected: peak,
		OutputFile:   resolved.OutputFile,
	}, nil
}

// fail финализирует run со статусом FAILED и возвращает исходную
// ошибку вызывающему.
func (o *Orchestrator) fail(ctx context.Context, run *domain.Run, logger *slog.Logger, err error) error {
	run.MarkFailed(err.Error())
	o.finalize(ctx, run, logger)
	return err
}

// finalize записывает терминальное состояние run в ledger и
// отправляет метрики. Ошибки здесь не фатальны: итог запуска уже
// определён, потеря записи истории его не меняет.
func (o *Orchestrator) finalize(ctx context.Context, run *domain.Run, logger *slog.Logger) {
	o.record(ctx, run, logger)

	o.metrics.Observe(run)
	if o.cfg.PushGateway != "" {
		if err := o.metrics.Push(o.cfg.PushGateway, run); err != nil {
			logger.Warn("metrics push failed", "error", err)
		}
	}
}

// record создаёт или обновляет запись run в ledger.
func (o *Orchestrator) record(ctx context.Context, run *domain.Run, logger *slog.Logger) {
	if o.runs == nil {
		return
	}

	var err error
	if run.Status == domain.RunStatusPending {
		err = o.runs.Create(ctx, run)
	} else {
		err = o.runs.Update(ctx, run)
	}
	if err != nil {
		logger.Warn("ledger write failed", "error", err)
	}
}
