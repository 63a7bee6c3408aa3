package webhooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	webhookRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/webhook"
	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
	"github.com/randevuhub/RH-AppointmentService/pkg/ptr"
)

type webhookRepoMock struct {
	hooks   []*domain.Webhook
	byID    *domain.Webhook
	updated *domain.Webhook
	deleted []int64
}

func (m *webhookRepoMock) Create(_ context.Context, hook *domain.Webhook) (*domain.Webhook, error) {
	hook.ID = 1
	m.hooks = append(m.hooks, hook)
	return hook, nil
}

func (m *webhookRepoMock) GetByID(_ context.Context, _ int64) (*domain.Webhook, error) {
	if m.byID == nil {
		return nil, webhookRepo.ErrWebhookNotFound
	}
	hook := *m.byID
	return &hook, nil
}

func (m *webhookRepoMock) GetByBusiness(_ context.Context, _ int64) ([]*domain.Webhook, error) {
	return m.hooks, nil
}

func (m *webhookRepoMock) Update(_ context.Context, hook *domain.Webhook) error {
	m.updated = hook
	return nil
}

func (m *webhookRepoMock) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type businessRepoMock struct{}

func (businessRepoMock) GetFirst(_ context.Context) (*domain.Business, error) {
	return &domain.Business{ID: 1, AdminPassword: adminToken}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const adminToken = "gizli-sifre"

func TestService_Create(t *testing.T) {
	t.Run("creates active subscription", func(t *testing.T) {
		repo := &webhookRepoMock{}
		s := NewService(repo, businessRepoMock{}, nopLogger{})

		resp, err := s.Create(context.Background(), &models.CreateWebhookRequest{
			AdminToken: adminToken,
			URL:        "https://example.com/hook",
			Event:      "appointment_created",
			Secret:     ptr.Ptr("top-secret"),
		})
		require.NoError(t, err)

		assert.True(t, resp.IsActive)
		assert.True(t, resp.HasSecret)
		assert.Equal(t, "appointment_created", resp.Event)

		require.Len(t, repo.hooks, 1)
		assert.Equal(t, int64(1), repo.hooks[0].BusinessID)
	})

	t.Run("rejects bad url", func(t *testing.T) {
		s := NewService(&webhookRepoMock{}, businessRepoMock{}, nopLogger{})

		for _, url := range []string{"", "ftp://example.com", "not a url at all", "/relative/path"} {
			_, err := s.Create(context.Background(), &models.CreateWebhookRequest{
				AdminToken: adminToken,
				URL:        url,
				Event:      "appointment_created",
			})
			assert.ErrorIs(t, err, ErrInvalidInput, "url=%q", url)
		}
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		s := NewService(&webhookRepoMock{}, businessRepoMock{}, nopLogger{})

		_, err := s.Create(context.Background(), &models.CreateWebhookRequest{
			AdminToken: adminToken,
			URL:        "https://example.com/hook",
			Event:      "appointment_deleted",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("wrong token", func(t *testing.T) {
		s := NewService(&webhookRepoMock{}, businessRepoMock{}, nopLogger{})

		_, err := s.Create(context.Background(), &models.CreateWebhookRequest{
			AdminToken: "yanlis",
			URL:        "https://example.com/hook",
			Event:      "appointment_created",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		repo := &webhookRepoMock{byID: &domain.Webhook{
			ID:       3,
			URL:      "https://example.com/old",
			Event:    domain.EventAppointmentCreated,
			IsActive: true,
		}}
		s := NewService(repo, businessRepoMock{}, nopLogger{})

		resp, err := s.Update(context.Background(), &models.UpdateWebhookRequest{
			WebhookID:  3,
			AdminToken: adminToken,
			IsActive:   ptr.Ptr(false),
		})
		require.NoError(t, err)

		assert.False(t, resp.IsActive)
		// не переданные поля не меняются
		assert.Equal(t, "https://example.com/old", resp.URL)
		require.NotNil(t, repo.updated)
		assert.False(t, repo.updated.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		s := NewService(&webhookRepoMock{}, businessRepoMock{}, nopLogger{})

		_, err := s.Update(context.Background(), &models.UpdateWebhookRequest{
			WebhookID:  3,
			AdminToken: adminToken,
		})
		assert.ErrorIs(t, err, ErrWebhookNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	repo := &webhookRepoMock{}
	s := NewService(repo, businessRepoMock{}, nopLogger{})

	require.NoError(t, s.Delete(context.Background(), 7, adminToken))
	assert.Equal(t, []int64{7}, repo.deleted)
}
