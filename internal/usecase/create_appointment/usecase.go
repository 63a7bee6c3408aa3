package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	serviceRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	businessRepo     BusinessRepository
	serviceRepo      ServiceRepository
	appointmentRepo  AppointmentRepository
	customerRepo     CustomerRepository
	notificationRepo NotificationRepository
	dispatcher       WebhookDispatcher
	txManager        TxManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	notificationRepo NotificationRepository,
	dispatcher WebhookDispatcher,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:     businessRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
//
// Защита слота двухуровневая: проверка конфликта и вставка идут в одной
// serializable транзакции, а частичный уникальный индекс в БД страхует от
// гонки, которую транзакция могла бы пропустить
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%d, date=%s, time=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем услугу, если запись на неё ссылается
	var svc *domain.Service
	if req.ServiceID != nil {
		var err error
		svc, err = uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		// Услуга чужого бизнеса неотличима от несуществующей
		if svc.BusinessID != req.BusinessID {
			uc.logger.Warn("CreateAppointment: service id=%d belongs to business id=%d, requested id=%d",
				svc.ID, svc.BusinessID, req.BusinessID)
			return nil, ErrServiceNotFound
		}
	}

	appt := &domain.Appointment{
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Date:          req.Date,
		StartTime:     req.StartTime,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
	}

	// 4. Проверка конфликта, вставка и карточка клиента в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.appointmentRepo.HasActiveAtSlot(txCtx, req.BusinessID, req.Date, req.StartTime)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if taken {
			return ErrSlotTaken
		}

		if _, err := uc.appointmentRepo.Create(txCtx, appt); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		if _, err := uc.customerRepo.Upsert(txCtx, appt.CustomerPhone, appt.CustomerName); err != nil {
			return fmt.Errorf("upsert customer: %w", err)
		}

		return nil
	})

	if err != nil {
		// Конфликт виден и на явной проверке, и на уникальном индексе
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot taken: business=%d, date=%s, time=%s",
				req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", appt.ID)

	// 5. Побочные эффекты после коммита: уведомление и вебхуки
	// Их сбои никогда не откатывают уже созданную запись
	uc.createNotification(ctx, appt)
	uc.dispatcher.Dispatch(ctx, domain.EventAppointmentCreated, appt, svc)

	return &Response{
		Appointment: appt,
		Service:     svc,
	}, nil
}

func (uc *UseCase) createNotification(ctx context.Context, appt *domain.Appointment) {
	notif := &domain.Notification{
		BusinessID:    appt.BusinessID,
		AppointmentID: appt.ID,
		Type:          domain.NotificationNewAppointment,
		Message: fmt.Sprintf("Yeni randevu: %s — %s %s",
			appt.CustomerName, appt.Date.Format(domain.DateFormat), appt.StartTime),
	}

	if _, err := uc.notificationRepo.Create(ctx, notif); err != nil {
		uc.logger.Error("CreateAppointment: failed to create notification for appointment id=%d: %v",
			appt.ID, err)
	}
}
