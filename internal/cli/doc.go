// Package cli реализует команды инструмента epirun.
//
// # Обзор
//
// CLI — тонкий слой над пакетом orchestrator: разбирает флаги,
// собирает конфигурацию и печатает итог. Команды:
//   - run: подготовить входные файлы, запустить симулятор и вывести
//     пик инфицированных (максимум колонки "I" output-файла)
//   - history: показать записанные в ledger запуски
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON (json.MarshalIndent) — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Итог команды run в табличном режиме — голое значение пика, как
// печатал оригинальный драйвер; это позволяет использовать pipe.
//
// ## Коды выхода
//
// 0 — успех; 1 — отсутствующий входной файл (после трёхстрочной
// диагностики) и прочие ошибки оркестрации; ненулевой код упавшего
// симулятора пробрасывается как есть (см. cmd/epirun).
package cli
