package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// CreateClosureRequest запрос на создание закрытия
type CreateClosureRequest struct {
	StartDate string           `json:"startDate"` // "2025-10-15"
	EndDate   string           `json:"endDate"`
	IsFullDay bool             `json:"isFullDay"`
	StartTime types.TimeString `json:"startTime,omitempty"`
	EndTime   types.TimeString `json:"endTime,omitempty"`
	Reason    string           `json:"reason,omitempty"`
}

// Response модели

// ClosureResponse ответ с данными закрытия
type ClosureResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsFullDay bool   `json:"isFullDay"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Reason    string `json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// Методы конвертации

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		ID:        c.ID,
		StartDate: c.StartDate.Format(domain.DateFormat),
		EndDate:   c.EndDate.Format(domain.DateFormat),
		IsFullDay: c.IsFullDay,
		StartTime: c.StartTime.String(),
		EndTime:   c.EndTime.String(),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	resp := &ClosureListResponse{
		Closures: make([]ClosureResponse, 0, len(closures)),
	}

	for _, c := range closures {
		if cResp := FromDomainClosure(c); cResp != nil {
			resp.Closures = append(resp.Closures, *cResp)
		}
	}

	return resp
}
