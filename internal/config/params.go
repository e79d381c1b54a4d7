package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ошибки параметров симуляции.
var (
	// ErrBadR0 — репродуктивное число не положительное.
	ErrBadR0 = errors.New("r0 must be positive")

	// ErrBadSeeds — список RNG seeds не из четырёх элементов.
	ErrBadSeeds = errors.New("exactly four RNG seeds are required")

	// ErrEmptyScenario — идентификатор сценария пуст.
	ErrEmptyScenario = errors.New("scenario must not be empty")
)

// SimParams — параметры симуляции, передаваемые симулятору.
//
// Значения по умолчанию повторяют оригинальный драйвер; YAML-файл
// (--params) переопределяет любые из них.
type SimParams struct {
	// R0 — базовое репродуктивное число. Пространственная
	// компонента (/R:) всегда равна его половине.
	R0 float64 `yaml:"r0"`

	// Scenario — идентификатор сценария вмешательства,
	// файл параметров p_<scenario>.txt.
	Scenario string `yaml:"scenario"`

	// Seeds — четыре позиционных RNG seed.
	Seeds []int64 `yaml:"seeds"`

	// QuarantineCompliance — /CLP1: соблюдение индивидуального
	// карантина [0.6 - 1.0].
	QuarantineCompliance float64 `yaml:"quarantine_compliance"`

	// SpatialContactRate — /CLP2: относительная частота
	// пространственных контактов при дистанцировании [0 - 0.4].
	SpatialContactRate float64 `yaml:"spatial_contact_rate"`

	// IsolationProportion — /CLP3: доля изолируемых выявленных
	// случаев [0.0 - 1.0].
	IsolationProportion float64 `yaml:"isolation_proportion"`
}

// DefaultSimParams возвращает параметры оригинального драйвера.
func DefaultSimParams() SimParams {
	return SimParams{
		R0:                   3.0,
		Scenario:             "PC7_CI_HQ_SD",
		Seeds:                []int64{98798150, 729101, 17389101, 4797132},
		QuarantineCompliance: 1.0,
		SpatialContactRate:   0.1,
		IsolationProportion:  0.1,
	}
}

// LoadSimParams загружает параметры из YAML-файла поверх значений
// по умолчанию. Пустой путь — только значения по умолчанию.
func LoadSimParams(path string) (SimParams, error) {
	params := DefaultSimParams()
	if path == "" {
		return params, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return SimParams{}, fmt.Errorf("read params file: %w", err)
	}

	if err := yaml.Unmarshal(content, &params); err != nil {
		return SimParams{}, fmt.Errorf("parse params file %s: %w", path, err)
	}

	if err := params.Validate(); err != nil {
		return SimParams{}, fmt.Errorf("params file %s: %w", path, err)
	}
	return params, nil
}

// SpatialRate возвращает производную пространственную компоненту
// репродуктивного числа: половину R0.
func (p SimParams) SpatialRate() float64 {
	return p.R0 / 2
}

// Validate проверяет параметры симуляции.
func (p SimParams) Validate() error {
	if p.R0 <= 0 {
		return ErrBadR0
	}
	if p.Scenario == "" {
		return ErrEmptyScenario
	}
	if len(p.Seeds) != 4 {
		return fmt.Errorf("%w, got %d", ErrBadSeeds, len(p.Seeds))
	}
	return nil
}
