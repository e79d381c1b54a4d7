// Package results загружает output-файл симулятора и вычисляет
// итоговую статистику.
//
// Файл — tab-separated таблица с заголовком; все значения числовые.
// Итог запуска — максимум колонки "I" (пик числа инфицированных).
// Отсутствующий или повреждённый файл — ошибка без деградации.
package results
