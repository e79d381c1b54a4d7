// Package domain содержит основные модели оркестратора запусков.
//
// Включает:
//   - Category — классификация страны для подбора входных файлов
//   - Phase — фаза запуска (первичная настройка или повторный запуск)
//   - Run — запись об одном запуске симулятора
//   - RunStatus — статус выполнения run
//
// Пакет не зависит от файловой системы и внешних сервисов:
// только типы и тотальные функции классификации.
package domain
