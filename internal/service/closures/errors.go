package closures

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrClosureOverlap возвращается, когда диапазон дат пересекается
	// с уже существующим закрытием
	ErrClosureOverlap = errors.New("closure overlaps an existing closure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
