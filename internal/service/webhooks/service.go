package webhooks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	webhookRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/webhook"
	"github.com/randevuhub/RH-AppointmentService/internal/service/webhooks/models"
)

// Service сервис управления подписками на события
// Все операции админские: токен сверяется с секретом бизнеса
type Service struct {
	webhookRepo  WebhookRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(
	webhookRepo WebhookRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		webhookRepo:  webhookRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Create создает новую подписку, активную сразу
func (s *Service) Create(ctx context.Context, req *models.CreateWebhookRequest) (*models.WebhookResponse, error) {
	biz, err := s.authorize(ctx, req.AdminToken)
	if err != nil {
		return nil, err
	}

	if err := validateURL(req.URL); err != nil {
		s.logger.Warn("Create: invalid url %q: %v", req.URL, err)
		return nil, err
	}

	event := domain.WebhookEvent(req.Event)
	if !event.Valid() {
		s.logger.Warn("Create: unknown event %q", req.Event)
		return nil, fmt.Errorf("%w: unknown event %q", ErrInvalidInput, req.Event)
	}

	hook := &domain.Webhook{
		BusinessID: biz.ID,
		URL:        req.URL,
		Event:      event,
		Secret:     req.Secret,
		IsActive:   true,
	}

	if _, err := s.webhookRepo.Create(ctx, hook); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created webhook id=%d event=%s", hook.ID, hook.Event)
	return models.FromDomainWebhook(hook), nil
}

// List получает подписки, новые первыми
func (s *Service) List(ctx context.Context, adminToken string) (*models.ListWebhooksResponse, error) {
	biz, err := s.authorize(ctx, adminToken)
	if err != nil {
		return nil, err
	}

	hooks, err := s.webhookRepo.GetByBusiness(ctx, biz.ID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.WebhookResponse, 0, len(hooks))
	for _, hook := range hooks {
		responses = append(responses, models.FromDomainWebhook(hook))
	}

	return &models.ListWebhooksResponse{Webhooks: responses}, nil
}

// Update обновляет переданные поля подписки
func (s *Service) Update(ctx context.Context, req *models.UpdateWebhookRequest) (*models.WebhookResponse, error) {
	if _, err := s.authorize(ctx, req.AdminToken); err != nil {
		return nil, err
	}

	hook, err := s.webhookRepo.GetByID(ctx, req.WebhookID)
	if err != nil {
		if errors.Is(err, webhookRepo.ErrWebhookNotFound) {
			s.logger.Warn("Update: webhook id=%d not found", req.WebhookID)
			return nil, ErrWebhookNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.URL != nil {
		if err := validateURL(*req.URL); err != nil {
			s.logger.Warn("Update: invalid url %q: %v", *req.URL, err)
			return nil, err
		}
		hook.URL = *req.URL
	}
	if req.Event != nil {
		event := domain.WebhookEvent(*req.Event)
		if !event.Valid() {
			s.logger.Warn("Update: unknown event %q", *req.Event)
			return nil, fmt.Errorf("%w: unknown event %q", ErrInvalidInput, *req.Event)
		}
		hook.Event = event
	}
	if req.Secret != nil {
		hook.Secret = req.Secret
	}
	if req.IsActive != nil {
		hook.IsActive = *req.IsActive
	}

	if err := s.webhookRepo.Update(ctx, hook); err != nil {
		if errors.Is(err, webhookRepo.ErrWebhookNotFound) {
			return nil, ErrWebhookNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated webhook id=%d", hook.ID)
	return models.FromDomainWebhook(hook), nil
}

// Delete удаляет подписку
func (s *Service) Delete(ctx context.Context, id int64, adminToken string) error {
	if _, err := s.authorize(ctx, adminToken); err != nil {
		return err
	}

	if err := s.webhookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, webhookRepo.ErrWebhookNotFound) {
			s.logger.Warn("Delete: webhook id=%d not found", id)
			return ErrWebhookNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted webhook id=%d", id)
	return nil
}

func (s *Service) authorize(ctx context.Context, adminToken string) (*domain.Business, error) {
	biz, err := s.businessRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("authorize: business is not set up yet")
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("authorize: failed to get business: %v", err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("authorize: invalid admin token")
		return nil, ErrAccessDenied
	}

	return biz, nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: url must be valid: %v", ErrInvalidInput, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidInput)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: url host is required", ErrInvalidInput)
	}
	return nil
}
