// Package config собирает конфигурацию запуска из значений по
// умолчанию, YAML-файла параметров и флагов командной строки.
//
// Приоритет (от низшего к высшему):
//  1. встроенные значения по умолчанию
//  2. YAML-файл параметров симуляции (--params)
//  3. флаги командной строки
//
// Resolve выполняет только coercion и валидацию режимных флагов;
// существование входных файлов проверяет пакет inputs.
package config
