package cruise

import "errors"

var (
	// ErrCruiseNotFound возвращается, когда круиз не найден в каталоге
	ErrCruiseNotFound = errors.New("cruise.repository: cruise not found")
)
