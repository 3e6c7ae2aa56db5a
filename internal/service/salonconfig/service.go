package salonconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
)

var validWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Service сервис для работы с конфигурацией салона
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Create создает конфигурацию салона
// Конфигурация единственная: повторное создание возвращает ErrConfigAlreadyExists
func (s *Service) Create(ctx context.Context, req *models.CreateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Create: creating salon config, morning=%s-%s, evening=%s-%s",
		req.MorningOpens, req.MorningCloses, req.EveningOpens, req.EveningCloses)

	// 1. Валидируем входные данные
	cfg := req.ToDomainConfig()
	if err := s.validateConfig(cfg); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем конфигурацию
	created, err := s.configRepo.Create(ctx, cfg)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigAlreadyExists) {
			s.logger.Warn("Create: salon config already exists")
			return nil, ErrConfigAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created salon config id=%d", created.ID)
	return models.FromDomainConfig(created), nil
}

// Get получает текущую конфигурацию салона
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching salon config")

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: salon config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update обновляет конфигурацию салона
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating salon config")

	// 1. Получаем существующую конфигурацию
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Update: salon config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления и валидируем результат
	req.ApplyToConfig(cfg)
	if err := s.validateConfig(cfg); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Обновляем конфигурацию в БД
	updated, err := s.configRepo.Update(ctx, cfg)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Update: salon config not found during update")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated salon config id=%d", updated.ID)
	return models.FromDomainConfig(updated), nil
}

// validateConfig валидирует бизнес-правила конфигурации:
// оба окна смен заданы и открываются раньше, чем закрываются,
// выходные дни - корректные названия дней недели
func (s *Service) validateConfig(cfg *domain.SalonConfig) error {
	if !cfg.Morning.IsValid() {
		return fmt.Errorf("%w: morning window must open before it closes", ErrInvalidInput)
	}
	if !cfg.Evening.IsValid() {
		return fmt.Errorf("%w: evening window must open before it closes", ErrInvalidInput)
	}

	for _, day := range cfg.DaysOff {
		if !validWeekdays[strings.ToLower(day)] {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}

	return nil
}
