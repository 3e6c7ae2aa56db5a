package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Date         string `json:"date"`      // "2025-10-15"
	ServiceID    int64  `json:"serviceId"`
	StartTime    string `json:"startTime"` // ISO 8601
	EndTime      string `json:"endTime"`   // ISO 8601
	Status       string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей за день
type AppointmentListResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// DailyStatsResponse агрегированная статистика записей за день.
// Total не включает отменённые записи.
type DailyStatsResponse struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:           a.ID,
		CustomerName: a.CustomerName,
		PhoneNumber:  a.PhoneNumber,
		Date:         a.Date.Format(domain.DateFormat),
		ServiceID:    a.ServiceID,
		StartTime:    a.StartTime.In(domain.SalonLocation).Format(time.RFC3339),
		EndTime:      a.EndTime.In(domain.SalonLocation).Format(time.RFC3339),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(date time.Time, appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
