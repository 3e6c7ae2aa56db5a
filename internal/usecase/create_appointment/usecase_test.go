package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Фейки репозиториев

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appt.ID = 42
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time, onlyOccupying bool) ([]*domain.Appointment, error) {
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
}

func (f *fakeConfigRepo) Get(ctx context.Context) (*domain.SalonConfig, error) {
	return f.cfg, nil
}

type fakeClosureRepo struct {
	closures []*domain.Closure
}

func (f *fakeClosureRepo) GetCovering(ctx context.Context, day time.Time) ([]*domain.Closure, error) {
	return f.closures, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-15 - среда
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func localTime(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, domain.SalonLocation)
}

func openConfig() *domain.SalonConfig {
	return &domain.SalonConfig{
		ID:      1,
		Morning: domain.ShiftWindow{Opens: "09:00", Closes: "14:00"},
		Evening: domain.ShiftWindow{Opens: "16:00", Closes: "21:00"},
	}
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Анна",
		PhoneNumber:  "+79990001122",
		Date:         testDate,
		ServiceID:    7,
		StartTime:    localTime(10, 0),
	}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	closures *fakeClosureRepo,
	tx *fakeTxManager,
) *UseCase {
	return NewUseCase(
		appointments,
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: openConfig()},
		closures,
		tx,
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.True(t, resp.StartTime.Equal(localTime(10, 0)))
	// Конец интервала зафиксирован: начало + длительность услуги
	assert.True(t, resp.EndTime.Equal(localTime(10, 25)))
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Анна", repo.created.CustomerName)
}

func TestExecute_StatusOverrideBlocked(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, &fakeTxManager{})

	req := validRequest()
	req.StatusOverride = ptr.Ptr(domain.StatusBlocked)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, resp.Status)
}

func TestExecute_ConflictWithScheduled(t *testing.T) {
	existing := &domain.Appointment{
		ID:        3,
		Status:    domain.StatusScheduled,
		StartTime: localTime(10, 10),
		EndTime:   localTime(10, 35),
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{existing}}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.False(t, conflict.IsBlocked)
	assert.Nil(t, repo.created)
}

func TestExecute_ConflictWithBlocked(t *testing.T) {
	existing := &domain.Appointment{
		ID:        3,
		Status:    domain.StatusBlocked,
		StartTime: localTime(9, 50),
		EndTime:   localTime(10, 20),
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{existing}}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.IsBlocked)
}

func TestExecute_AdjacentIntervalsDoNotConflict(t *testing.T) {
	// Существующая запись заканчивается ровно в момент начала новой
	existing := &domain.Appointment{
		ID:        3,
		Status:    domain.StatusScheduled,
		StartTime: localTime(9, 35),
		EndTime:   localTime(10, 0),
	}
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{existing}}
	uc := newTestUseCase(repo, &fakeClosureRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_FullDayClosureAtCommit(t *testing.T) {
	closures := &fakeClosureRepo{closures: []*domain.Closure{
		{StartDate: testDate, EndDate: testDate, IsFullDay: true},
	}}
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, closures, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
	assert.Nil(t, repo.created)
}

func TestExecute_PartialClosureOverlapAtCommit(t *testing.T) {
	closures := &fakeClosureRepo{closures: []*domain.Closure{
		{StartDate: testDate, EndDate: testDate, StartTime: "10:00", EndTime: "10:30"},
	}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, closures, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.IsBlocked)
}

func TestExecute_DayOff(t *testing.T) {
	cfg := openConfig()
	cfg.DaysOff = []string{"wednesday"}

	tx := &fakeTxManager{}
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}},
		&fakeConfigRepo{cfg: cfg},
		&fakeClosureRepo{},
		tx,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
	// До транзакции дело не доходит
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeServiceRepo{err: serviceStorage.ErrServiceNotFound},
		&fakeConfigRepo{cfg: openConfig()},
		&fakeClosureRepo{},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_BookingFlipsSlotOnRequery(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	serviceRepo := &fakeServiceRepo{service: &domain.Service{ID: 7, DurationMinutes: 25}}
	configRepo := &fakeConfigRepo{cfg: openConfig()}
	closureRepo := &fakeClosureRepo{}

	createUC := NewUseCase(repo, serviceRepo, configRepo, closureRepo, &fakeTxManager{}, nopLogger{})
	slotsUC := getAvailableSlots.NewUseCase(repo, serviceRepo, configRepo, closureRepo, nopLogger{})

	slotsReq := &getAvailableSlots.Request{ServiceID: 7, Date: testDate}

	before, err := slotsUC.Execute(context.Background(), slotsReq)
	require.NoError(t, err)
	require.True(t, availability(before)["10:00"])
	require.True(t, availability(before)["09:40"])

	_, err = createUC.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторная генерация видит созданную запись: занятый интервал
	// и пересекающиеся кандидаты становятся недоступными
	after, err := slotsUC.Execute(context.Background(), slotsReq)
	require.NoError(t, err)

	got := availability(after)
	assert.False(t, got["10:00"])
	assert.False(t, got["09:40"]) // 09:40 + 25 мин пересекает [10:00, 10:25)
	assert.True(t, got["09:35"])  // заканчивается ровно в 10:00
	assert.True(t, got["10:25"])  // начинается ровно в конце записи
}

// availability строит карту "HH:MM" -> доступность по всем кандидатам
func availability(resp *getAvailableSlots.Response) map[string]bool {
	out := make(map[string]bool, len(resp.AllSlots))
	for _, s := range resp.AllSlots {
		out[s.StartTime.In(domain.SalonLocation).Format(domain.TimeFormat)] = s.Available
	}
	return out
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeClosureRepo{}, &fakeTxManager{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty customer name", func(r *Request) { r.CustomerName = "" }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"non-positive service id", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
		{"start time on another day", func(r *Request) {
			r.StartTime = time.Date(2025, 10, 16, 10, 0, 0, 0, domain.SalonLocation)
		}},
		{"invalid status override", func(r *Request) {
			r.StatusOverride = ptr.Ptr(domain.StatusCanceled)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
