package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shaiso/Epirun/internal/domain"
)

// Значения по умолчанию (как в оригинальном драйвере).
const (
	DefaultCountry    = "United_Kingdom"
	DefaultSimulator  = "CovidSim.exe"
	DefaultFirstSetup = "N"
	DefaultReadOnly   = "Y"

	// LedgerOff — специальное значение --ledger, отключающее запись
	// истории запусков.
	LedgerOff = "off"
)

// Config — полностью разрешённая конфигурация одного запуска.
//
// Строится один раз через Resolve и дальше не меняется. Каждый запуск
// оркестратора получает свой Config; общего изменяемого состояния нет.
type Config struct {
	// Country — страна, для которой выполняется симуляция.
	Country string

	// SimulatorPath — путь к исполняемому файлу симулятора.
	SimulatorPath string

	// DataDir — корень входных данных (admin_units, populations).
	DataDir string

	// ParamDir — каталог с файлами параметров.
	ParamDir string

	// OutputDir — каталог для результатов симулятора.
	OutputDir string

	// NetworkDir — каталог для распакованных и бинарных кэшей.
	NetworkDir string

	// Threads — число потоков симулятора (/c:).
	Threads int

	// Phase — фаза запуска: setup (генерация кэшей) или resume.
	Phase domain.Phase

	// ReadOnly — пропустить выполнение симулятора и только
	// прочитать готовый output-файл.
	ReadOnly bool

	// Params — параметры симуляции (R0, сценарий, seeds, CLP).
	Params SimParams

	// LedgerPath — путь к SQLite-файлу истории запусков,
	// пустая строка — история отключена.
	LedgerPath string

	// PushGateway — адрес Prometheus Pushgateway, пустая строка —
	// метрики не отправляются.
	PushGateway string
}

// Options — сырые значения флагов командной строки до разрешения.
// Пустые строки и нулевые значения означают "использовать default".
type Options struct {
	Country       string
	SimulatorPath string
	DataDir       string
	ParamDir      string
	OutputDir     string
	NetworkDir    string
	Threads       int
	FirstSetup    string // Y или N
	ReadOnly      string // Y или N
	ParamsFile    string
	LedgerPath    string
	PushGateway   string
}

// Resolve строит Config из Options.
//
// Режимные флаги валидируются жёстко: любое значение кроме Y/N —
// ошибка. Существование файлов здесь не проверяется.
func Resolve(opts Options) (*Config, error) {
	cfg := &Config{
		Country:       opts.Country,
		SimulatorPath: opts.SimulatorPath,
		Threads:       opts.Threads,
		PushGateway:   opts.PushGateway,
	}

	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.SimulatorPath == "" {
		cfg.SimulatorPath = DefaultSimulator
	}
	if cfg.Threads <= 0 {
		cfg.Threads = DefaultThreads()
	}

	cfg.DataDir = opts.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(baseDir(), "covid_sim")
	}

	// Каталоги параметров, результатов и кэшей по умолчанию
	// лежат под каталогом данных.
	cfg.ParamDir = orDefault(opts.ParamDir, filepath.Join(cfg.DataDir, "param_files"))
	cfg.OutputDir = orDefault(opts.OutputDir, filepath.Join(cfg.DataDir, "output_files"))
	cfg.NetworkDir = orDefault(opts.NetworkDir, filepath.Join(cfg.DataDir, "network_files"))

	firstSetup := orDefault(opts.FirstSetup, DefaultFirstSetup)
	phase, err := domain.ParsePhase(firstSetup)
	if err != nil {
		return nil, err
	}
	cfg.Phase = phase

	readOnly := orDefault(opts.ReadOnly, DefaultReadOnly)
	cfg.ReadOnly, err = domain.ParseSwitch("readonly", readOnly)
	if err != nil {
		return nil, err
	}

	cfg.Params, err = LoadSimParams(opts.ParamsFile)
	if err != nil {
		return nil, err
	}

	switch opts.LedgerPath {
	case "":
		cfg.LedgerPath = filepath.Join(cfg.NetworkDir, "epirun.db")
	case LedgerOff:
		cfg.LedgerPath = ""
	default:
		cfg.LedgerPath = opts.LedgerPath
	}

	return cfg, nil
}

// DefaultThreads возвращает число потоков по умолчанию: количество
// доступных ядер процессора, минимум 2.
func DefaultThreads() int {
	n := runtime.NumCPU()
	if n <= 0 {
		return 2
	}
	return n
}

// baseDir возвращает каталог исполняемого файла; при ошибке —
// текущий каталог.
func baseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Validate проверяет внутреннюю согласованность конфигурации.
func (c *Config) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("country must not be empty")
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	return c.Params.Validate()
}
