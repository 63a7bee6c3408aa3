package update_appointment_status

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
)

// notificationMessages шаблоны сообщений по целевому статусу
var notificationMessages = map[domain.AppointmentStatus]string{
	domain.StatusApproved:  "Randevu onaylandı: %s - %s %s",
	domain.StatusCancelled: "Randevu iptal edildi: %s - %s %s",
	domain.StatusCompleted: "Randevu tamamlandı: %s - %s %s",
}

// notificationTypes тип уведомления по целевому статусу
var notificationTypes = map[domain.AppointmentStatus]domain.NotificationType{
	domain.StatusApproved:  domain.NotificationApproved,
	domain.StatusCancelled: domain.NotificationCancelled,
	domain.StatusCompleted: domain.NotificationCompleted,
}

// UseCase use case для смены статуса записи администратором
type UseCase struct {
	appointmentRepo  AppointmentRepository
	businessRepo     BusinessRepository
	serviceRepo      ServiceRepository
	notificationRepo NotificationRepository
	dispatcher       WebhookDispatcher
	txManager        TxManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	notificationRepo NotificationRepository,
	dispatcher WebhookDispatcher,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		businessRepo:     businessRepo,
		serviceRepo:      serviceRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case смены статуса записи
//
// Чтение текущего статуса и UPDATE идут в одной serializable транзакции,
// поэтому два конкурирующих перехода не могут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: appointment=%d, target=%s", req.AppointmentID, req.TargetStatus)

	// 1. Валидация входных данных: только распознаваемые литералы статусов
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if !domain.IsTargetStatus(req.TargetStatus) {
		uc.logger.Warn("UpdateAppointmentStatus: unknown target status %q", req.TargetStatus)
		return nil, fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, req.TargetStatus)
	}
	target := domain.AppointmentStatus(req.TargetStatus)

	var appt *domain.Appointment

	// 2. Переход статуса в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		appt, err = uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			return err
		}

		// Авторизация по секрету бизнеса, которому принадлежит запись
		biz, err := uc.businessRepo.GetByID(txCtx, appt.BusinessID)
		if err != nil {
			return fmt.Errorf("get business: %w", err)
		}
		if subtle.ConstantTimeCompare([]byte(req.AdminToken), []byte(biz.AdminPassword)) != 1 {
			return ErrUnauthorized
		}

		if !appt.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, target)
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt.ID, target); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		appt.Status = target
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrUnauthorized):
			uc.logger.Warn("UpdateAppointmentStatus: invalid admin token for appointment id=%d", req.AppointmentID)
			return nil, ErrUnauthorized
		case errors.Is(err, ErrInvalidTransition):
			uc.logger.Warn("UpdateAppointmentStatus: %v", err)
			return nil, err
		default:
			uc.logger.Error("UpdateAppointmentStatus: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%d moved to %s", appt.ID, target)

	// 3. Побочные эффекты после коммита: уведомление всегда, вебхук только на одобрение
	uc.createNotification(ctx, appt, target)
	if target == domain.StatusApproved {
		uc.dispatcher.Dispatch(ctx, domain.EventAppointmentApproved, appt, uc.loadService(ctx, appt))
	}

	return &Response{Appointment: appt}, nil
}

func (uc *UseCase) createNotification(ctx context.Context, appt *domain.Appointment, target domain.AppointmentStatus) {
	notif := &domain.Notification{
		BusinessID:    appt.BusinessID,
		AppointmentID: appt.ID,
		Type:          notificationTypes[target],
		Message: fmt.Sprintf(notificationMessages[target],
			appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime),
	}

	if _, err := uc.notificationRepo.Create(ctx, notif); err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to create notification for appointment id=%d: %v",
			appt.ID, err)
	}
}

// loadService получает снимок услуги для полезной нагрузки вебхука
// Отсутствие услуги не мешает отправке события
func (uc *UseCase) loadService(ctx context.Context, appt *domain.Appointment) *domain.Service {
	if appt.ServiceID == nil {
		return nil
	}

	svc, err := uc.serviceRepo.GetByID(ctx, *appt.ServiceID)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: failed to load service id=%d: %v", *appt.ServiceID, err)
		return nil
	}

	return svc
}
