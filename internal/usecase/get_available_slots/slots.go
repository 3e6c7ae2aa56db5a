package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// generateDaySlots генерирует кандидатов на время начала записи для всего дня.
// Каждое рабочее окно (утро, вечер) обрабатывается независимо, результаты
// конкатенируются в хронологическом порядке - утреннее окно по конфигурации
// предшествует вечернему.
func generateDaySlots(
	date time.Time,
	durationMinutes int,
	cfg *domain.SalonConfig,
	appointments []*domain.Appointment,
	disposition domain.ClosureDisposition,
) ([]Slot, error) {
	slots := make([]Slot, 0)

	for _, window := range cfg.Windows() {
		windowSlots, err := generateWindowSlots(date, durationMinutes, window, appointments, disposition)
		if err != nil {
			return nil, err
		}
		slots = append(slots, windowSlots...)
	}

	return slots, nil
}

// generateWindowSlots генерирует кандидатов внутри одного рабочего окна.
//
// Кандидаты идут с фиксированным шагом domain.SlotIntervalMinutes от момента
// открытия. Шаг мельче длительности большинства услуг, поэтому слоты
// "скользят", а не укладываются плиткой - это позволяет начать 25-минутную
// стрижку в :05, :10, :15 и максимизирует упаковку.
//
// Генерация окна останавливается, когда конец кандидата (начало + длительность
// услуги) выходит за время закрытия: каждый выданный слот гарантированно
// обслуживается целиком в рабочие часы. Услуга, заканчивающаяся ровно в
// закрытие, допустима (полуинтервальная семантика).
func generateWindowSlots(
	date time.Time,
	durationMinutes int,
	window domain.ShiftWindow,
	appointments []*domain.Appointment,
	disposition domain.ClosureDisposition,
) ([]Slot, error) {
	if !window.IsValid() {
		return []Slot{}, nil
	}

	opens, err := window.Opens.OnDate(date, domain.SalonLocation)
	if err != nil {
		return nil, err
	}

	closes, err := window.Closes.OnDate(date, domain.SalonLocation)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := domain.SlotIntervalMinutes * time.Minute

	slots := make([]Slot, 0)

	for current := opens; ; current = current.Add(step) {
		end := current.Add(duration)
		if end.After(closes) {
			break
		}

		slots = append(slots, Slot{
			StartTime: current,
			Available: isCandidateAvailable(current, end, appointments, disposition),
		})
	}

	return slots, nil
}

// isCandidateAvailable проверяет кандидата [start, end) на пересечения.
//
// Слот доступен, если он не пересекается ни с одной занимающей таймлайн
// записью (scheduled, blocked) и - при частичном закрытии дня - с окном
// закрытия, которое трактуется ровно как существующая запись.
func isCandidateAvailable(
	start, end time.Time,
	appointments []*domain.Appointment,
	disposition domain.ClosureDisposition,
) bool {
	for _, appt := range appointments {
		// Завершённые и отменённые записи не занимают таймлайн
		if !appt.IsOccupying() {
			continue
		}

		if domain.Overlaps(appt.StartTime, appt.EndTime, start, end) {
			return false
		}
	}

	if disposition.IsPartiallyClosed() {
		if domain.Overlaps(disposition.WindowStart, disposition.WindowEnd, start, end) {
			return false
		}
	}

	return true
}
