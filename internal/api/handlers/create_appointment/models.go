package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Date         string `json:"date"`      // "2025-10-15"
	ServiceID    int64  `json:"serviceId"`
	StartTime    string `json:"startTime"` // "10:00"

	// Status позволяет администратору создать блокировку интервала.
	// Допустимые значения: scheduled, blocked. Пустое = scheduled
	Status string `json:"status,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Date         string `json:"date"`
	ServiceID    int64  `json:"serviceId"`
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "10:25"
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ConflictResponse HTTP ответ при занятом слоте
type ConflictResponse struct {
	Error     string `json:"error"`
	Conflict  bool   `json:"conflict"`
	IsBlocked bool   `json:"isBlocked"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.UTC)
	if err != nil {
		return nil, err
	}

	startStr, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	startTime, err := startStr.OnDate(date, domain.SalonLocation)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Date:         date,
		ServiceID:    r.ServiceID,
		StartTime:    startTime,
	}

	if r.Status != "" {
		status := domain.AppointmentStatus(r.Status)
		req.StatusOverride = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		PhoneNumber:  resp.PhoneNumber,
		Date:         resp.Date.Format(domain.DateFormat),
		ServiceID:    resp.ServiceID,
		StartTime:    resp.StartTime.In(domain.SalonLocation).Format(domain.TimeFormat),
		EndTime:      resp.EndTime.In(domain.SalonLocation).Format(domain.TimeFormat),
		Status:       string(resp.Status),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
