package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/ptr"
)

type webhookRepoMock struct {
	hooks []*domain.Webhook
	err   error
}

func (m *webhookRepoMock) GetActiveByEvent(_ context.Context, event domain.WebhookEvent) ([]*domain.Webhook, error) {
	if m.err != nil {
		return nil, m.err
	}
	// репозиторий отдаёт только активные подписки на событие
	out := make([]*domain.Webhook, 0)
	for _, h := range m.hooks {
		if h.Event == event && h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type receivedRequest struct {
	secret  string
	ctype   string
	payload Payload
}

// testReceiver собирает входящие доставки
type testReceiver struct {
	mu       sync.Mutex
	requests []receivedRequest
}

func (r *testReceiver) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var payload Payload
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))

		r.mu.Lock()
		r.requests = append(r.requests, receivedRequest{
			secret:  req.Header.Get("X-Webhook-Secret"),
			ctype:   req.Header.Get("Content-Type"),
			payload: payload,
		})
		r.mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            42,
		BusinessID:    1,
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "+905551112233",
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_FanOut(t *testing.T) {
	receiver := &testReceiver{}
	server := httptest.NewServer(receiver.handler(t))
	defer server.Close()

	// две активные подписки на событие, одна выключенная
	repo := &webhookRepoMock{hooks: []*domain.Webhook{
		{ID: 1, URL: server.URL, Event: domain.EventAppointmentCreated, Secret: ptr.Ptr("s1"), IsActive: true},
		{ID: 2, URL: server.URL, Event: domain.EventAppointmentCreated, IsActive: true},
		{ID: 3, URL: server.URL, Event: domain.EventAppointmentCreated, Secret: ptr.Ptr("s3"), IsActive: false},
	}}

	d := NewDispatcher(repo, 2, 16, time.Second, nopLogger{})

	d.Dispatch(context.Background(), domain.EventAppointmentCreated, testAppointment(), nil)
	d.Close()

	require.Len(t, receiver.requests, 2, "inactive subscription must not receive a delivery")

	secrets := make([]string, 0, 2)
	for _, req := range receiver.requests {
		assert.Equal(t, "application/json", req.ctype)
		assert.Equal(t, domain.EventAppointmentCreated, req.payload.Event)
		assert.Equal(t, int64(42), req.payload.Data.ID)
		assert.Equal(t, "2026-09-07", req.payload.Data.Date)
		assert.Equal(t, "pending", req.payload.Data.Status)
		assert.Nil(t, req.payload.Data.Service)
		secrets = append(secrets, req.secret)
	}
	assert.ElementsMatch(t, []string{"s1", ""}, secrets, "secret header is sent only when configured")
}

func TestDispatcher_ServiceSnapshot(t *testing.T) {
	receiver := &testReceiver{}
	server := httptest.NewServer(receiver.handler(t))
	defer server.Close()

	repo := &webhookRepoMock{hooks: []*domain.Webhook{
		{ID: 1, URL: server.URL, Event: domain.EventAppointmentApproved, IsActive: true},
	}}

	d := NewDispatcher(repo, 1, 16, time.Second, nopLogger{})

	svc := &domain.Service{Name: "Saç Kesimi", DurationMinutes: 30, Price: ptr.Ptr(250.0)}
	appt := testAppointment()
	appt.Status = domain.StatusApproved

	d.Dispatch(context.Background(), domain.EventAppointmentApproved, appt, svc)
	d.Close()

	require.Len(t, receiver.requests, 1)
	payload := receiver.requests[0].payload

	require.NotNil(t, payload.Data.Service)
	assert.Equal(t, "Saç Kesimi", payload.Data.Service.Name)
	assert.Equal(t, 30, payload.Data.Service.Duration)
	require.NotNil(t, payload.Data.Service.Price)
	assert.Equal(t, 250.0, *payload.Data.Service.Price)

	_, err := time.Parse(time.RFC3339, payload.Timestamp)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, payload.Data.CreatedAt)
	assert.NoError(t, err)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	repo := &webhookRepoMock{}
	d := NewDispatcher(repo, 1, 16, time.Second, nopLogger{})

	// событие без подписчиков не должно ничего ломать
	d.Dispatch(context.Background(), domain.EventAppointmentCreated, testAppointment(), nil)
	d.Close()
}

func TestDispatcher_FailedDeliveryIsDropped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := &webhookRepoMock{hooks: []*domain.Webhook{
		{ID: 1, URL: server.URL, Event: domain.EventAppointmentCreated, IsActive: true},
	}}

	d := NewDispatcher(repo, 1, 16, time.Second, nopLogger{})

	// доставка упадёт, но Dispatch и Close не возвращают ошибок
	d.Dispatch(context.Background(), domain.EventAppointmentCreated, testAppointment(), nil)
	d.Close()
}
