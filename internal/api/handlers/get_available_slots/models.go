package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	AllSlots        []Slot   `json:"allSlots"`
	AvailableSlots  []string `json:"availableSlots"`
	ClosureReason   *string  `json:"closureReason,omitempty"`
}

// Slot модель кандидата на время начала
type Slot struct {
	Time      string `json:"time"` // "09:35"
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.UTC)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	allSlots := make([]Slot, len(resp.AllSlots))
	for i, slot := range resp.AllSlots {
		allSlots[i] = Slot{
			Time:      slot.StartTime.In(domain.SalonLocation).Format(domain.TimeFormat),
			Available: slot.Available,
		}
	}

	available := make([]string, len(resp.AvailableSlots))
	for i, t := range resp.AvailableSlots {
		available[i] = t.In(domain.SalonLocation).Format(domain.TimeFormat)
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		AllSlots:        allSlots,
		AvailableSlots:  available,
		ClosureReason:   resp.ClosureReason,
	}
}
