package salonconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация ещё не создана
	ErrConfigNotFound = errors.New("salon config not found")

	// ErrConfigAlreadyExists возвращается при попытке создать вторую конфигурацию
	ErrConfigAlreadyExists = errors.New("salon config already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
