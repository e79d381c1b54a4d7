// Package telemetry обеспечивает наблюдаемость оркестратора.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики запуска
//
// Оркестратор — одноразовый batch-процесс, поэтому метрики не
// экспортируются через /metrics endpoint, а отправляются push-моделью
// в Pushgateway после завершения запуска (если он настроен).
package telemetry
