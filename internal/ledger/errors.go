package ledger

import "errors"

// Ошибки ledger.
var (
	// ErrRunNotFound — run не найден в ledger.
	ErrRunNotFound = errors.New("run not found")
)
