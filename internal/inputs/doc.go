// Package inputs разрешает и подготавливает входные файлы симулятора.
//
// Resolver выводит пути всех входных файлов из конфигурации и
// категории страны и проверяет их существование; отсутствие любого
// обязательного файла — невосстановимая ошибка конфигурации
// (MissingInputError, код выхода 1).
//
// Stager готовит файловую систему к запуску: создаёт каталог
// результатов, распаковывает gzip-архив плотности населения и в
// режиме первичной настройки удаляет устаревшие кэши.
package inputs
