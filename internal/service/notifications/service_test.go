package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	notificationRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/notification"
	"github.com/randevuhub/RH-AppointmentService/internal/service/notifications/models"
)

type notificationRepoMock struct {
	notifications []*domain.Notification
	unreadCount   int64

	gotUnreadOnly bool
	gotLimit      uint64
	markReadErr   error
	markedAll     []int64
}

func (m *notificationRepoMock) GetByBusiness(_ context.Context, _ int64, unreadOnly bool, limit uint64) ([]*domain.Notification, error) {
	m.gotUnreadOnly = unreadOnly
	m.gotLimit = limit
	return m.notifications, nil
}

func (m *notificationRepoMock) CountUnread(_ context.Context, _ int64) (int64, error) {
	return m.unreadCount, nil
}

func (m *notificationRepoMock) MarkRead(_ context.Context, _ int64) error {
	return m.markReadErr
}

func (m *notificationRepoMock) MarkAllRead(_ context.Context, businessID int64) error {
	m.markedAll = append(m.markedAll, businessID)
	return nil
}

type businessRepoMock struct{}

func (businessRepoMock) GetByID(_ context.Context, id int64) (*domain.Business, error) {
	return &domain.Business{ID: id, AdminPassword: adminToken}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const adminToken = "gizli-sifre"

func TestService_List(t *testing.T) {
	repo := &notificationRepoMock{
		notifications: []*domain.Notification{
			{ID: 2, BusinessID: 1, AppointmentID: 10, Type: domain.NotificationApproved, Message: "Randevu onaylandı: Ayşe - 2026-09-07 10:00", CreatedAt: time.Now()},
			{ID: 1, BusinessID: 1, AppointmentID: 9, Type: domain.NotificationNewAppointment, Message: "Yeni randevu: Ali — 2026-09-06 11:00", IsRead: true, CreatedAt: time.Now().Add(-time.Hour)},
		},
		unreadCount: 1,
	}
	s := NewService(repo, businessRepoMock{}, nopLogger{})

	resp, err := s.List(context.Background(), &models.ListNotificationsRequest{
		BusinessID: 1,
		AdminToken: adminToken,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(domain.NotificationInboxLimit), repo.gotLimit)
	assert.False(t, repo.gotUnreadOnly)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(1), resp.UnreadCount)
	assert.Equal(t, "approved", resp.Notifications[0].Type)
}

func TestService_List_UnreadOnly(t *testing.T) {
	repo := &notificationRepoMock{}
	s := NewService(repo, businessRepoMock{}, nopLogger{})

	_, err := s.List(context.Background(), &models.ListNotificationsRequest{
		BusinessID: 1,
		AdminToken: adminToken,
		UnreadOnly: true,
	})
	require.NoError(t, err)
	assert.True(t, repo.gotUnreadOnly)
}

func TestService_List_WrongToken(t *testing.T) {
	s := NewService(&notificationRepoMock{}, businessRepoMock{}, nopLogger{})

	_, err := s.List(context.Background(), &models.ListNotificationsRequest{
		BusinessID: 1,
		AdminToken: "yanlis",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_MarkRead(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := NewService(&notificationRepoMock{}, businessRepoMock{}, nopLogger{})
		assert.NoError(t, s.MarkRead(context.Background(), 5))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &notificationRepoMock{markReadErr: notificationRepo.ErrNotificationNotFound}
		s := NewService(repo, businessRepoMock{}, nopLogger{})

		err := s.MarkRead(context.Background(), 5)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("bad id", func(t *testing.T) {
		s := NewService(&notificationRepoMock{}, businessRepoMock{}, nopLogger{})
		assert.ErrorIs(t, s.MarkRead(context.Background(), 0), ErrInvalidInput)
	})
}

func TestService_MarkAllRead(t *testing.T) {
	repo := &notificationRepoMock{}
	s := NewService(repo, businessRepoMock{}, nopLogger{})

	require.NoError(t, s.MarkAllRead(context.Background(), 1, adminToken))
	// идемпотентность: повторный вызов тоже успешен
	require.NoError(t, s.MarkAllRead(context.Background(), 1, adminToken))
	assert.Equal(t, []int64{1, 1}, repo.markedAll)
}
