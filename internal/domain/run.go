package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run — запись об одном запуске симулятора.
//
// Run создаётся оркестратором перед стадией выполнения и сохраняется
// в ledger после завершения. Read-only запуски (только чтение готового
// output-файла) тоже записываются — с ReadOnly=true.
type Run struct {
	// ID — уникальный идентификатор запуска.
	ID uuid.UUID `json:"id"`

	// Country — страна, для которой выполнялась симуляция.
	Country string `json:"country"`

	// Scenario — идентификатор сценария вмешательства (p_<scenario>.txt).
	Scenario string `json:"scenario"`

	// R0 — базовое репродуктивное число, переданное симулятору.
	R0 float64 `json:"r0"`

	// Phase — фаза запуска (setup или resume).
	Phase Phase `json:"phase"`

	// ReadOnly — true, если симулятор не запускался и читался
	// только готовый output-файл.
	ReadOnly bool `json:"read_only"`

	// Status — текущий статус выполнения.
	Status RunStatus `json:"status"`

	// PeakInfected — максимум колонки "I" из output-файла.
	// Заполняется только для успешных запусков.
	PeakInfected float64 `json:"peak_infected"`

	// Error — текст ошибки, если run завершился с FAILED.
	Error string `json:"error,omitempty"`

	// StartedAt — время начала выполнения (когда статус стал RUNNING).
	// Nil, если run ещё не начался.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения (успешного или с ошибкой).
	// Nil, если run ещё выполняется.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// CreatedAt — время создания run.
	CreatedAt time.Time `json:"created_at"`
}

// NewRun создаёт run в статусе PENDING.
func NewRun(country, scenario string, r0 float64, phase Phase, readOnly bool) *Run {
	return &Run{
		ID:        uuid.New(),
		Country:   country,
		Scenario:  scenario,
		R0:        r0,
		Phase:     phase,
		ReadOnly:  readOnly,
		Status:    RunStatusPending,
		CreatedAt: time.Now(),
	}
}

// Duration возвращает продолжительность выполнения.
// Возвращает 0, если run ещё не завершён.
func (r *Run) Duration() time.Duration {
	if r.StartedAt == nil || r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(*r.StartedAt)
}

// IsFinished возвращает true, если run завершён (в любом статусе).
func (r *Run) IsFinished() bool {
	return r.Status.IsTerminal()
}

// MarkRunning переводит run в статус RUNNING.
func (r *Run) MarkRunning() {
	now := time.Now()
	r.Status = RunStatusRunning
	r.StartedAt = &now
}

// MarkSucceeded переводит run в статус SUCCEEDED с итоговым пиком.
func (r *Run) MarkSucceeded(peakInfected float64) {
	now := time.Now()
	r.Status = RunStatusSucceeded
	r.PeakInfected = peakInfected
	r.FinishedAt = &now
}

// MarkFailed переводит run в статус FAILED с ошибкой.
func (r *Run) MarkFailed(err string) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.FinishedAt = &now
	r.Error = err
}
