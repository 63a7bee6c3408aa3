package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	"github.com/randevuhub/RH-AppointmentService/pkg/ptr"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

type businessRepoMock struct {
	business *domain.Business
	err      error
}

func (m *businessRepoMock) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return m.business, m.err
}

type serviceRepoMock struct {
	service *domain.Service
	err     error
}

func (m *serviceRepoMock) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.err
}

type appointmentRepoMock struct {
	taken     bool
	takenErr  error
	existing  *domain.Appointment
	createErr error
	created   *domain.Appointment
}

// HasActiveAtSlot повторяет семантику хранилища: слот держат только активные статусы
func (m *appointmentRepoMock) HasActiveAtSlot(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	if m.existing != nil {
		return m.existing.IsActive(), m.takenErr
	}
	return m.taken, m.takenErr
}

func (m *appointmentRepoMock) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	appt.ID = 42
	m.created = appt
	return appt, nil
}

type customerRepoMock struct {
	phone string
	name  string
}

func (m *customerRepoMock) Upsert(_ context.Context, phone, name string) (*domain.Customer, error) {
	m.phone = phone
	m.name = name
	return &domain.Customer{ID: 1, Phone: phone, Name: name}, nil
}

type notificationRepoMock struct {
	created []*domain.Notification
}

func (m *notificationRepoMock) Create(_ context.Context, notif *domain.Notification) (*domain.Notification, error) {
	m.created = append(m.created, notif)
	return notif, nil
}

type dispatcherMock struct {
	events []domain.WebhookEvent
}

func (m *dispatcherMock) Dispatch(_ context.Context, event domain.WebhookEvent, _ *domain.Appointment, _ *domain.Service) {
	m.events = append(m.events, event)
}

// txManagerMock выполняет функцию без реальной транзакции
type txManagerMock struct{}

func (txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type deps struct {
	business      *businessRepoMock
	services      *serviceRepoMock
	appointments  *appointmentRepoMock
	customers     *customerRepoMock
	notifications *notificationRepoMock
	dispatcher    *dispatcherMock
}

func newDeps() *deps {
	return &deps{
		business:      &businessRepoMock{business: &domain.Business{ID: 1}},
		services:      &serviceRepoMock{},
		appointments:  &appointmentRepoMock{},
		customers:     &customerRepoMock{},
		notifications: &notificationRepoMock{},
		dispatcher:    &dispatcherMock{},
	}
}

func newUseCase(d *deps) *UseCase {
	return NewUseCase(
		d.business, d.services, d.appointments, d.customers,
		d.notifications, d.dispatcher, txManagerMock{}, nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		BusinessID:    1,
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "+905551112233",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates pending appointment with side effects", func(t *testing.T) {
		d := newDeps()
		uc := newUseCase(d)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.Appointment.ID)
		assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
		assert.Nil(t, resp.Service)

		// карточка клиента обновлена по телефону
		assert.Equal(t, "+905551112233", d.customers.phone)
		assert.Equal(t, "Ayşe Yılmaz", d.customers.name)

		// уведомление и событие созданы
		require.Len(t, d.notifications.created, 1)
		assert.Equal(t, domain.NotificationNewAppointment, d.notifications.created[0].Type)
		assert.Contains(t, d.notifications.created[0].Message, "Yeni randevu: Ayşe Yılmaz")
		assert.Equal(t, []domain.WebhookEvent{domain.EventAppointmentCreated}, d.dispatcher.events)
	})

	t.Run("active appointment blocks the slot", func(t *testing.T) {
		d := newDeps()
		d.appointments.taken = true
		uc := newUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, d.notifications.created)
		assert.Empty(t, d.dispatcher.events)
	})

	t.Run("cancelled appointment frees the slot for a new booking", func(t *testing.T) {
		d := newDeps()
		d.appointments.existing = &domain.Appointment{
			ID:            7,
			BusinessID:    1,
			CustomerName:  "Mehmet Demir",
			CustomerPhone: "+905559998877",
			Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:     "10:00",
			Status:        domain.StatusCancelled,
		}
		uc := newUseCase(d)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.Appointment.ID)
		assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
	})

	t.Run("unique index violation maps to slot taken", func(t *testing.T) {
		d := newDeps()
		d.appointments.createErr = appointmentRepo.ErrSlotTaken
		uc := newUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("unknown business", func(t *testing.T) {
		d := newDeps()
		d.business.business = nil
		d.business.err = businessRepo.ErrBusinessNotFound
		uc := newUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("service of another business is not found", func(t *testing.T) {
		d := newDeps()
		d.services.service = &domain.Service{ID: 7, BusinessID: 99}
		uc := newUseCase(d)

		req := validRequest()
		req.ServiceID = ptr.Ptr(int64(7))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service snapshot is returned", func(t *testing.T) {
		d := newDeps()
		d.services.service = &domain.Service{ID: 7, BusinessID: 1, Name: "Saç Kesimi", DurationMinutes: 30}
		uc := newUseCase(d)

		req := validRequest()
		req.ServiceID = ptr.Ptr(int64(7))

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Service)
		assert.Equal(t, "Saç Kesimi", resp.Service.Name)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Request)
		}{
			{"missing name", func(r *Request) { r.CustomerName = "  " }},
			{"missing phone", func(r *Request) { r.CustomerPhone = "" }},
			{"zero date", func(r *Request) { r.Date = time.Time{} }},
			{"bad time", func(r *Request) { r.StartTime = "25:99" }},
			{"non-positive business", func(r *Request) { r.BusinessID = 0 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newUseCase(newDeps())

				req := validRequest()
				tt.mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
