// Package orchestrator управляет выполнением одного запуска симулятора.
//
// Orchestrator отвечает за:
//   - классификацию страны и разрешение входных файлов
//   - подготовку файловой системы (распаковка, чистка кэшей)
//   - сборку командной строки симулятора
//   - выполнение дочернего процесса (если не read-only)
//   - чтение output-файла и вычисление пика инфицированных
//   - запись итога в ledger и отправку метрик
//
// Конвейер строго последовательный; каждый запуск работает на своём
// Config, общего изменяемого состояния между запусками нет.
package orchestrator
