package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrConfigNotFound возвращается, когда конфигурация салона не создана
	ErrConfigNotFound = errors.New("create_appointment: salon config not found")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	// (выходной день или полнодневное закрытие)
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с существующей записью или окном закрытия. Конкретный конфликт
	// доступен через errors.As с *ConflictError.
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ConflictError конфликт запрошенного интервала с существующей записью.
// IsBlocked = true, если интервал занят административной блокировкой
// (или окном частичного закрытия), а не записью клиента - обработчик
// показывает клиенту разные сообщения.
type ConflictError struct {
	IsBlocked bool
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	if e.IsBlocked {
		return fmt.Sprintf("%v: blocked by admin", ErrSlotConflict)
	}
	return fmt.Sprintf("%v: already booked", ErrSlotConflict)
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
