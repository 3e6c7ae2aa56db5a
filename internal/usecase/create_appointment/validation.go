package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все проверки выполняются до обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long (max %d)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phoneNumber is too long (max %d)", ErrInvalidInput, domain.MaxPhoneNumberLength)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Момент начала должен попадать на запрошенную календарную дату
	// в часовом поясе салона - иначе конфликт-проверка читала бы записи
	// не того дня
	start := req.StartTime.In(domain.SalonLocation)
	if !sameDay(start, req.Date) {
		return fmt.Errorf("%w: startTime does not fall on the booking date", ErrInvalidInput)
	}

	if req.StatusOverride != nil {
		switch *req.StatusOverride {
		case domain.StatusScheduled, domain.StatusBlocked:
		default:
			return fmt.Errorf("%w: status override must be scheduled or blocked", ErrInvalidInput)
		}
	}

	return nil
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
