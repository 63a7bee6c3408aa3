package notifications

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	notificationRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/notification"
	"github.com/randevuhub/RH-AppointmentService/internal/service/notifications/models"
)

// Service сервис входящих уведомлений бизнеса
type Service struct {
	notificationRepo NotificationRepository
	businessRepo     BusinessRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		businessRepo:     businessRepo,
		logger:           logger,
	}
}

// List получает последние уведомления бизнеса и счётчик непрочитанных
// Окно выдачи ограничено NotificationInboxLimit, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListNotificationsRequest) (*models.ListNotificationsResponse, error) {
	if err := s.authorize(ctx, req.BusinessID, req.AdminToken); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.GetByBusiness(ctx, req.BusinessID, req.UnreadOnly, domain.NotificationInboxLimit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unreadCount, err := s.notificationRepo.CountUnread(ctx, req.BusinessID)
	if err != nil {
		s.logger.Error("List: failed to count unread: %v", err)
		return nil, fmt.Errorf("%w: failed to count unread: %v", ErrInternal, err)
	}

	responses := make([]*models.NotificationResponse, 0, len(notifications))
	for _, notif := range notifications {
		responses = append(responses, models.FromDomainNotification(notif))
	}

	return &models.ListNotificationsResponse{
		Notifications: responses,
		UnreadCount:   unreadCount,
	}, nil
}

// MarkRead помечает одно уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: notificationID must be positive", ErrInvalidInput)
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления бизнеса прочитанными
// Идемпотентная операция
func (s *Service) MarkAllRead(ctx context.Context, businessID int64, adminToken string) error {
	if err := s.authorize(ctx, businessID, adminToken); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkAllRead(ctx, businessID); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: business id=%d", businessID)
	return nil
}

func (s *Service) authorize(ctx context.Context, businessID int64, adminToken string) error {
	if businessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("authorize: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("authorize: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("authorize: invalid admin token for business id=%d", businessID)
		return ErrAccessDenied
	}

	return nil
}
