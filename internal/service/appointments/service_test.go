package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/appointments/models"
	"github.com/randevuhub/RH-AppointmentService/pkg/ptr"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

const adminToken = "gizli-sifre"

type appointmentRepoMock struct {
	appointments []*domain.Appointment
	getByIDErr   error

	gotFilter domain.AppointmentsFilter
	deleted   []int64
}

func (m *appointmentRepoMock) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	for _, appt := range m.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (m *appointmentRepoMock) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	m.gotFilter = filter
	return m.appointments, nil
}

func (m *appointmentRepoMock) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type businessRepoMock struct {
	notFound bool
}

func (m businessRepoMock) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	if m.notFound {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return &domain.Business{ID: id, AdminPassword: adminToken}, nil
}

func (m businessRepoMock) GetBySlug(_ context.Context, slug string) (*domain.Business, error) {
	if m.notFound {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return &domain.Business{ID: 1, Slug: slug, AdminPassword: adminToken}, nil
}

type serviceRepoMock struct {
	services map[int64]*domain.Service
	calls    int
}

func (m *serviceRepoMock) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	m.calls++
	if svc, ok := m.services[id]; ok {
		return svc, nil
	}
	return nil, assert.AnError
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, serviceID *int64) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		BusinessID:    1,
		ServiceID:     serviceID,
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "+905551112233",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:30"),
		Status:        domain.StatusPending,
	}
}

func TestService_GetByID(t *testing.T) {
	svcRepo := &serviceRepoMock{services: map[int64]*domain.Service{
		3: {ID: 3, Name: "Saç kesimi", DurationMinutes: 30, Price: ptr.Ptr(float64(250))},
	}}
	repo := &appointmentRepoMock{appointments: []*domain.Appointment{testAppointment(7, ptr.Ptr(int64(3)))}}
	s := NewService(repo, businessRepoMock{}, svcRepo, nopLogger{})

	resp, err := s.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, types.TimeString("10:30"), resp.Time)
	require.NotNil(t, resp.Service)
	assert.Equal(t, "Saç kesimi", resp.Service.Name)
	assert.Equal(t, 30, resp.Service.Duration)
}

func TestService_GetByID_NotFound(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	_, err := s.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByID_BadID(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	_, err := s.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID_MissingServiceIsNotFatal(t *testing.T) {
	// Услуга могла быть удалена после создания записи
	repo := &appointmentRepoMock{appointments: []*domain.Appointment{testAppointment(7, ptr.Ptr(int64(404)))}}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	resp, err := s.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, resp.Service)
}

func TestService_List(t *testing.T) {
	repo := &appointmentRepoMock{appointments: []*domain.Appointment{
		testAppointment(1, ptr.Ptr(int64(3))),
		testAppointment(2, ptr.Ptr(int64(3))),
	}}
	svcRepo := &serviceRepoMock{services: map[int64]*domain.Service{
		3: {ID: 3, Name: "Saç kesimi", DurationMinutes: 30},
	}}
	s := NewService(repo, businessRepoMock{}, svcRepo, nopLogger{})

	resp, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: adminToken,
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(1), repo.gotFilter.BusinessID)
	// Одна и та же услуга грузится один раз на весь список
	assert.Equal(t, 1, svcRepo.calls)
}

func TestService_List_WrongToken(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: "yanlis",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_List_BusinessNotFound(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{notFound: true}, &serviceRepoMock{}, nopLogger{})

	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "yok",
		AdminToken: adminToken,
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestService_List_MonthExpandsToHalfOpenRange(t *testing.T) {
	repo := &appointmentRepoMock{}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: adminToken,
		Month:      &month,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *repo.gotFilter.StartDate)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *repo.gotFilter.EndDate)
	assert.Nil(t, repo.gotFilter.Date)
}

func TestService_List_MonthOverridesDate(t *testing.T) {
	repo := &appointmentRepoMock{}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: adminToken,
		Month:      &month,
		Date:       &date,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.StartDate)
}

func TestService_List_StatusFilter(t *testing.T) {
	repo := &appointmentRepoMock{}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	status := "approved"
	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: adminToken,
		Status:     &status,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusApproved, *repo.gotFilter.Status)
}

func TestService_Delete(t *testing.T) {
	repo := &appointmentRepoMock{appointments: []*domain.Appointment{testAppointment(7, nil)}}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	require.NoError(t, s.Delete(context.Background(), 7, adminToken))
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestService_Delete_WrongToken(t *testing.T) {
	repo := &appointmentRepoMock{appointments: []*domain.Appointment{testAppointment(7, nil)}}
	s := NewService(repo, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	err := s.Delete(context.Background(), 7, "yanlis")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestService_Delete_NotFound(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	err := s.Delete(context.Background(), 99, adminToken)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_List_UnknownStatus(t *testing.T) {
	s := NewService(&appointmentRepoMock{}, businessRepoMock{}, &serviceRepoMock{}, nopLogger{})

	status := "archived"
	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{
		Slug:       "kuafor-ali",
		AdminToken: adminToken,
		Status:     &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
