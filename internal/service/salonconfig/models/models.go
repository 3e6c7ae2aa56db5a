package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// CreateConfigRequest запрос на создание конфигурации салона
type CreateConfigRequest struct {
	MorningOpens  types.TimeString `json:"morningOpens"`
	MorningCloses types.TimeString `json:"morningCloses"`
	EveningOpens  types.TimeString `json:"eveningOpens"`
	EveningCloses types.TimeString `json:"eveningCloses"`
	DaysOff       []string         `json:"daysOff"`
}

// UpdateConfigRequest запрос на обновление конфигурации
// Поддерживает частичное обновление - обновляются только указанные поля
type UpdateConfigRequest struct {
	MorningOpens  *types.TimeString `json:"morningOpens,omitempty"`
	MorningCloses *types.TimeString `json:"morningCloses,omitempty"`
	EveningOpens  *types.TimeString `json:"eveningOpens,omitempty"`
	EveningCloses *types.TimeString `json:"eveningCloses,omitempty"`
	DaysOff       *[]string         `json:"daysOff,omitempty"`
}

// ApplyToConfig применяет частичное обновление к domain модели
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.SalonConfig) {
	if r.MorningOpens != nil {
		cfg.Morning.Opens = *r.MorningOpens
	}
	if r.MorningCloses != nil {
		cfg.Morning.Closes = *r.MorningCloses
	}
	if r.EveningOpens != nil {
		cfg.Evening.Opens = *r.EveningOpens
	}
	if r.EveningCloses != nil {
		cfg.Evening.Closes = *r.EveningCloses
	}
	if r.DaysOff != nil {
		cfg.DaysOff = *r.DaysOff
	}
}

// Response модели

// ConfigResponse ответ с данными конфигурации салона
type ConfigResponse struct {
	ID            int64    `json:"id"`
	MorningOpens  string   `json:"morningOpens"`
	MorningCloses string   `json:"morningCloses"`
	EveningOpens  string   `json:"eveningOpens"`
	EveningCloses string   `json:"eveningCloses"`
	DaysOff       []string `json:"daysOff"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// ToDomainConfig конвертирует request в domain модель
func (r *CreateConfigRequest) ToDomainConfig() *domain.SalonConfig {
	return &domain.SalonConfig{
		Morning: domain.ShiftWindow{Opens: r.MorningOpens, Closes: r.MorningCloses},
		Evening: domain.ShiftWindow{Opens: r.EveningOpens, Closes: r.EveningCloses},
		DaysOff: r.DaysOff,
	}
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.SalonConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	daysOff := cfg.DaysOff
	if daysOff == nil {
		daysOff = []string{}
	}

	return &ConfigResponse{
		ID:            cfg.ID,
		MorningOpens:  cfg.Morning.Opens.String(),
		MorningCloses: cfg.Morning.Closes.String(),
		EveningOpens:  cfg.Evening.Opens.String(),
		EveningCloses: cfg.Evening.Closes.String(),
		DaysOff:       daysOff,
		CreatedAt:     cfg.CreatedAt,
		UpdatedAt:     cfg.UpdatedAt,
	}
}
