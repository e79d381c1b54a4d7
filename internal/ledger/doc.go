// Package ledger хранит историю запусков симулятора в SQLite.
//
// Файл ledger лежит рядом с кэшами (по умолчанию
// <network dir>/epirun.db); оркестратор создаёт запись перед стадией
// выполнения и финализирует её после. Команда history читает историю
// для вывода пользователю.
package ledger
