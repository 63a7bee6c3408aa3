package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
)

const (
	// DefaultWorkers количество воркеров доставки по умолчанию
	DefaultWorkers = 4

	// DefaultQueueSize ёмкость очереди доставки по умолчанию
	DefaultQueueSize = 256

	// DefaultTimeout таймаут одной доставки по умолчанию
	DefaultTimeout = 10 * time.Second
)

// delivery задача доставки: одна подписка, один готовый payload
type delivery struct {
	url    string
	secret *string
	body   []byte
	event  domain.WebhookEvent
}

// Dispatcher асинхронный диспетчер вебхуков
//
// Dispatch никогда не блокирует вызывающего: задачи кладутся в ограниченную
// очередь, при переполнении доставка отбрасывается с записью в лог.
// Доставки best-effort, без повторов
type Dispatcher struct {
	webhookRepo WebhookRepository
	client      *http.Client
	logger      Logger

	queue chan delivery
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает воркеры доставки
func NewDispatcher(webhookRepo WebhookRepository, workers, queueSize int, timeout time.Duration, logger Logger) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	d := &Dispatcher{
		webhookRepo: webhookRepo,
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
		queue:       make(chan delivery, queueSize),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Dispatch ставит доставки события всем активным подписчикам в очередь
// Ошибки выборки подписок и переполнение очереди только логируются
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.WebhookEvent, appt *domain.Appointment, svc *domain.Service) {
	hooks, err := d.webhookRepo.GetActiveByEvent(ctx, event)
	if err != nil {
		d.logger.Error("Dispatch: failed to load webhooks for event=%s: %v", event, err)
		return
	}
	if len(hooks) == 0 {
		return
	}

	payload := buildPayload(event, appt, svc, time.Now())
	body, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("Dispatch: failed to marshal payload for event=%s: %v", event, err)
		return
	}

	for _, hook := range hooks {
		task := delivery{
			url:    hook.URL,
			secret: hook.Secret,
			body:   body,
			event:  event,
		}

		select {
		case d.queue <- task:
		default:
			d.logger.Warn("Dispatch: queue is full, dropping delivery event=%s url=%s", event, hook.URL)
		}
	}

	d.logger.Info("Dispatch: enqueued event=%s for %d subscriber(s)", event, len(hooks))
}

// Close закрывает очередь и дожидается завершения воркеров
// Задачи, уже стоящие в очереди, будут доставлены
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for task := range d.queue {
		if err := d.deliver(task); err != nil {
			d.logger.Error("Dispatch: delivery failed event=%s url=%s: %v", task.event, task.url, err)
		}
	}
}

func (d *Dispatcher) deliver(task delivery) error {
	req, err := http.NewRequest(http.MethodPost, task.url, bytes.NewReader(task.body))
	if err != nil {
		return fmt.Errorf("build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if task.secret != nil && *task.secret != "" {
		req.Header.Set("X-Webhook-Secret", *task.secret)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}
