package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonConfigStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	serviceStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
)

// Фейки репозиториев

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time, onlyOccupying bool) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeConfigRepo struct {
	cfg *domain.SalonConfig
	err error
}

func (f *fakeConfigRepo) Get(ctx context.Context) (*domain.SalonConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

type fakeClosureRepo struct {
	closures []*domain.Closure
	err      error
}

func (f *fakeClosureRepo) GetCovering(ctx context.Context, day time.Time) ([]*domain.Closure, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.closures, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вспомогательные конструкторы

// 2025-10-15 - среда
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func localTime(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, domain.SalonLocation)
}

func twoWindowConfig() *domain.SalonConfig {
	return &domain.SalonConfig{
		ID:      1,
		Morning: domain.ShiftWindow{Opens: "09:00", Closes: "14:00"},
		Evening: domain.ShiftWindow{Opens: "16:00", Closes: "21:00"},
	}
}

func newUseCase(
	appointments *fakeAppointmentRepo,
	services *fakeServiceRepo,
	configs *fakeConfigRepo,
	closures *fakeClosureRepo,
) *UseCase {
	return NewUseCase(appointments, services, configs, closures, nopLogger{})
}

// availability строит карту "HH:MM" -> доступность
func availability(slots []Slot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.StartTime.In(domain.SalonLocation).Format(domain.TimeFormat)] = s.Available
	}
	return m
}

func TestExecute_OpenDayGeneratesBothWindows(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	// 09:00..13:35 и 16:00..20:35 с шагом 5 минут - по 56 кандидатов на окно
	require.Len(t, resp.AllSlots, 112)
	assert.Len(t, resp.AvailableSlots, 112)
	assert.Equal(t, 25, resp.DurationMinutes)
	assert.Nil(t, resp.ClosureReason)

	assert.True(t, resp.AllSlots[0].StartTime.Equal(localTime(9, 0)))
	assert.True(t, resp.AllSlots[55].StartTime.Equal(localTime(13, 35)))
	assert.True(t, resp.AllSlots[56].StartTime.Equal(localTime(16, 0)))
	assert.True(t, resp.AllSlots[111].StartTime.Equal(localTime(20, 35)))
}

func TestExecute_ServiceEndingExactlyAtCloseIsAllowed(t *testing.T) {
	cfg := &domain.SalonConfig{
		Morning: domain.ShiftWindow{Opens: "09:00", Closes: "14:00"},
	}

	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 300}},
		&fakeConfigRepo{cfg: cfg},
		&fakeClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	// Единственный кандидат: 09:00 + 300 минут = ровно 14:00
	require.Len(t, resp.AllSlots, 1)
	assert.True(t, resp.AllSlots[0].StartTime.Equal(localTime(9, 0)))
	assert.True(t, resp.AllSlots[0].Available)
}

func TestExecute_DayOff(t *testing.T) {
	cfg := twoWindowConfig()
	cfg.DaysOff = []string{"wednesday"}

	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: cfg},
		&fakeClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.AllSlots)
	assert.Empty(t, resp.AvailableSlots)
	require.NotNil(t, resp.ClosureReason)
	assert.Equal(t, "Day off", *resp.ClosureReason)
}

func TestExecute_FullDayClosure(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{closures: []*domain.Closure{
			{StartDate: testDate, EndDate: testDate, IsFullDay: true, Reason: "Инвентаризация"},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.AllSlots)
	assert.Empty(t, resp.AvailableSlots)
	require.NotNil(t, resp.ClosureReason)
	assert.Equal(t, "Инвентаризация", *resp.ClosureReason)
}

func TestExecute_PartialClosureSuppressesWindow(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 20}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{closures: []*domain.Closure{
			{StartDate: testDate, EndDate: testDate, StartTime: "10:00", EndTime: "10:30"},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AllSlots)
	assert.Nil(t, resp.ClosureReason)

	avail := availability(resp.AllSlots)

	// Кандидат, заканчивающийся ровно в начало окна закрытия, допустим
	assert.True(t, avail["09:40"])
	// Кандидаты, пересекающие [10:00, 10:30), подавлены
	assert.False(t, avail["09:45"])
	assert.False(t, avail["09:50"])
	assert.False(t, avail["10:25"])
	// Кандидат, начинающийся ровно в конец окна, допустим
	assert.True(t, avail["10:30"])
}

func TestExecute_BookedIntervalBlocksOverlappingCandidates(t *testing.T) {
	booked := &domain.Appointment{
		ID:        3,
		Status:    domain.StatusScheduled,
		StartTime: localTime(11, 0),
		EndTime:   localTime(11, 25),
	}

	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{booked}},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	avail := availability(resp.AllSlots)

	assert.True(t, avail["10:35"])
	assert.False(t, avail["10:40"])
	assert.False(t, avail["11:00"])
	assert.False(t, avail["11:20"])
	assert.True(t, avail["11:25"])
}

func TestExecute_NonOccupyingAppointmentsAreIgnored(t *testing.T) {
	canceled := &domain.Appointment{
		ID:        4,
		Status:    domain.StatusCanceled,
		StartTime: localTime(11, 0),
		EndTime:   localTime(11, 25),
	}

	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{canceled}},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	avail := availability(resp.AllSlots)
	assert.True(t, avail["11:00"])
}

func TestExecute_Determinism(t *testing.T) {
	booked := &domain.Appointment{
		ID:        3,
		Status:    domain.StatusBlocked,
		StartTime: localTime(17, 0),
		EndTime:   localTime(18, 0),
	}

	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{booked}},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	first, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first.AllSlots, second.AllSlots)
	assert.Equal(t, first.AvailableSlots, second.AvailableSlots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{err: serviceStorage.ErrServiceNotFound},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ConfigNotFound(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{err: salonConfigStorage.ErrConfigNotFound},
		&fakeClosureRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: twoWindowConfig()},
		&fakeClosureRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
