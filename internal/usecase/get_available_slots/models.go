package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time   // Дата, на которую запрашивались слоты
	ServiceID       int64       // ID услуги
	DurationMinutes int         // Длительность услуги в минутах
	AllSlots        []Slot      // Все кандидаты с признаком доступности
	AvailableSlots  []time.Time // Только доступные времена начала
	ClosureReason   *string     // Причина закрытия (если день полностью закрыт)
}

// Slot кандидат на время начала записи
type Slot struct {
	StartTime time.Time // Абсолютный момент начала
	Available bool      // Свободен ли слот
}
