// Package invoke строит и выполняет командную строку симулятора.
//
// Invocation — неизменяемый упорядоченный список токенов, собираемый
// из конфигурации и разрешённых путей по декларативной таблице,
// ключуемой фазой запуска. Executor запускает симулятор дочерним
// процессом, наследуя stdout/stderr, и блокируется до завершения.
// Ненулевой код выхода — фатальная ошибка без повторов.
package invoke
