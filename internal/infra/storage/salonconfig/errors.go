package salonconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация салона ещё не создана
	ErrConfigNotFound = errors.New("salonconfig.repository: config not found")

	// ErrConfigAlreadyExists возвращается при попытке создать вторую конфигурацию
	ErrConfigAlreadyExists = errors.New("salonconfig.repository: config already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salonconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("salonconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("salonconfig.repository: failed to scan row")
)
