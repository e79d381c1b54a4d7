package inputs

import (
	"errors"
	"fmt"
)

// ErrMissingInput — обязательный входной файл отсутствует.
var ErrMissingInput = errors.New("required input file is missing")

// MissingInputError — отсутствующий входной файл с контекстом:
// назначение файла, каталог поиска и полный путь.
//
// Describe воспроизводит трёхстрочную диагностику оригинального
// драйвера; Error даёт однострочную форму для логов и wrap-цепочек.
type MissingInputError struct {
	// Purpose — первая строка диагностики ("Unable to find ...").
	Purpose string

	// DirLabel — подпись каталога ("Data directory" или "Param directory").
	DirLabel string

	// Dir — каталог, в котором искали.
	Dir string

	// Path — полный путь, который проверялся.
	Path string
}

// Error реализует интерфейс error.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s (looked for %s)", e.Purpose, e.Path)
}

// Unwrap возвращает базовую ошибку.
func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// Describe возвращает многострочную диагностику для пользователя.
func (e *MissingInputError) Describe() string {
	return fmt.Sprintf("%s\n%s: %s\nLooked for: %s", e.Purpose, e.DirLabel, e.Dir, e.Path)
}
