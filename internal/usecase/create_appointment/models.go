package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName string    // Имя клиента
	PhoneNumber  string    // Телефон клиента
	Date         time.Time // Календарная дата записи (без времени)
	ServiceID    int64     // ID услуги
	StartTime    time.Time // Абсолютный момент начала

	// StatusOverride позволяет администратору создать синтетическую запись
	// со статусом blocked тем же путём, что и обычную. Допустимые значения:
	// scheduled, blocked. nil = scheduled.
	StatusOverride *domain.AppointmentStatus
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64
	CustomerName string
	PhoneNumber  string
	Date         time.Time
	ServiceID    int64
	StartTime    time.Time
	EndTime      time.Time // StartTime + длительность услуги на момент создания
	Status       domain.AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
