package business

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/business/models"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// Service сервис для работы с бизнесом и его услугами
type Service struct {
	businessRepo     BusinessRepository
	serviceRepo      ServiceRepository
	customerRepo     CustomerRepository
	appointmentRepo  AppointmentRepository
	notificationRepo NotificationRepository
	webhookRepo      WebhookRepository
	txManager        TxManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса бизнеса
func NewService(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	notificationRepo NotificationRepository,
	webhookRepo WebhookRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		businessRepo:     businessRepo,
		serviceRepo:      serviceRepo,
		customerRepo:     customerRepo,
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		webhookRepo:      webhookRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Setup выполняет одноразовую первичную настройку бизнеса
// Деплой обслуживает один бизнес: повторная настройка возвращает ErrBusinessExists
// Стартовый набор услуг берётся из отраслевого шаблона
func (s *Service) Setup(ctx context.Context, req *models.SetupRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Setup: sector=%s, name=%s", req.Sector, req.Name)

	if err := validateSetupRequest(req); err != nil {
		s.logger.Warn("Setup: validation failed: %v", err)
		return nil, err
	}

	template, ok := domain.SectorTemplates[req.Sector]
	if !ok {
		s.logger.Warn("Setup: unknown sector %q", req.Sector)
		return nil, fmt.Errorf("%w: %q", ErrUnknownSector, req.Sector)
	}

	exists, err := s.businessRepo.Exists(ctx)
	if err != nil {
		s.logger.Error("Setup: failed to check existing business: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing business: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Setup: business already exists")
		return nil, ErrBusinessExists
	}

	workingDays, err := domain.ParseWorkingDays(domain.DefaultWorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: parse default working days: %v", ErrInternal, err)
	}

	description := req.Description
	if description == nil || strings.TrimSpace(*description) == "" {
		tagline := template.Tagline
		description = &tagline
	}

	phone := req.Phone
	biz := &domain.Business{
		Name:                strings.TrimSpace(req.Name),
		Slug:                slugify(req.Name),
		Sector:              req.Sector,
		Description:         description,
		Address:             req.Address,
		Phone:               &phone,
		AdminPassword:       req.Password,
		WorkingDays:         workingDays,
		OpenTime:            types.TimeString(domain.DefaultOpenTime),
		CloseTime:           types.TimeString(domain.DefaultCloseTime),
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		IsSetupComplete:     true,
	}

	var services []*domain.Service

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.businessRepo.Create(txCtx, biz); err != nil {
			return err
		}

		services = make([]*domain.Service, 0, len(template.DefaultServices))
		for _, name := range template.DefaultServices {
			services = append(services, &domain.Service{
				BusinessID:      biz.ID,
				Name:            name,
				DurationMinutes: domain.DefaultServiceDurationMinutes,
				IsActive:        true,
			})
		}

		return s.serviceRepo.CreateBatch(txCtx, services)
	})

	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessExists) {
			return nil, ErrBusinessExists
		}
		s.logger.Error("Setup: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Setup: created business id=%d slug=%s with %d service(s)",
		biz.ID, biz.Slug, len(services))

	return models.FromDomainBusiness(biz, services), nil
}

// GetBySlug получает бизнес с активными услугами
// Публичная операция, секрет в ответ не попадает
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BusinessResponse, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	biz, err := s.businessRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBySlug: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBySlug: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.GetActiveByBusiness(ctx, biz.ID)
	if err != nil {
		s.logger.Error("GetBySlug: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(biz, services), nil
}

// Update обновляет профиль, расписание и услуги бизнеса
// Админская операция: токен сверяется с текущим секретом
// Инварианты рабочего дня проверяются на итоговом состоянии
func (s *Service) Update(ctx context.Context, req *models.UpdateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Update: slug=%s", req.Slug)

	biz, err := s.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Update: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("Update: invalid admin token for business id=%d", biz.ID)
		return nil, ErrAccessDenied
	}

	if err := applyUpdate(biz, req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.businessRepo.Update(txCtx, biz); err != nil {
			return err
		}

		// Переданный набор услуг полностью заменяет текущий
		if req.Services != nil {
			if err := s.serviceRepo.DeleteByBusiness(txCtx, biz.ID); err != nil {
				return err
			}

			services := make([]*domain.Service, 0, len(req.Services))
			for _, input := range req.Services {
				duration := domain.DefaultServiceDurationMinutes
				if input.Duration != nil {
					duration = *input.Duration
				}
				services = append(services, &domain.Service{
					BusinessID:      biz.ID,
					Name:            input.Name,
					DurationMinutes: duration,
					Price:           input.Price,
					IsActive:        true,
				})
			}

			return s.serviceRepo.CreateBatch(txCtx, services)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Update: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.GetActiveByBusiness(ctx, biz.ID)
	if err != nil {
		s.logger.Error("Update: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated business id=%d", biz.ID)
	return models.FromDomainBusiness(biz, services), nil
}

// ListCustomers получает клиентов бизнеса со сводкой по записям
// Админская операция
func (s *Service) ListCustomers(ctx context.Context, slug, adminToken string) (*models.ListCustomersResponse, error) {
	biz, err := s.businessRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("ListCustomers: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("ListCustomers: invalid admin token for business id=%d", biz.ID)
		return nil, ErrAccessDenied
	}

	summaries, err := s.customerRepo.GetSummariesByBusiness(ctx, biz.ID)
	if err != nil {
		s.logger.Error("ListCustomers: failed to load customers: %v", err)
		return nil, fmt.Errorf("%w: failed to load customers: %v", ErrInternal, err)
	}

	customers := make([]*models.CustomerResponse, 0, len(summaries))
	for _, summary := range summaries {
		customers = append(customers, models.FromDomainCustomerSummary(summary))
	}

	return &models.ListCustomersResponse{Customers: customers}, nil
}

// Reset полностью очищает данные деплоя и позволяет пройти настройку заново
// Админская операция: пароль сверяется с секретом единственного бизнеса
// Таблицы чистятся в одной транзакции в порядке внешних ключей
func (s *Service) Reset(ctx context.Context, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	biz, err := s.businessRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Reset: no business to reset")
			return ErrBusinessNotFound
		}
		s.logger.Error("Reset: repository error: %v", err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("Reset: invalid admin password for business id=%d", biz.ID)
		return ErrAccessDenied
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.notificationRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.appointmentRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.serviceRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.webhookRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.customerRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		return s.businessRepo.DeleteAll(txCtx)
	})

	if err != nil {
		s.logger.Error("Reset: transaction failed: %v", err)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: wiped business id=%d and all related data", biz.ID)
	return nil
}

func validateSetupRequest(req *models.SetupRequest) error {
	if strings.TrimSpace(req.Sector) == "" {
		return fmt.Errorf("%w: sector is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// applyUpdate накладывает переданные поля на бизнес и проверяет инварианты
func applyUpdate(biz *domain.Business, req *models.UpdateBusinessRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		biz.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		biz.Description = req.Description
	}
	if req.Address != nil {
		biz.Address = req.Address
	}
	if req.Phone != nil {
		biz.Phone = req.Phone
	}
	if req.WorkingDays != nil {
		days, err := domain.ParseWorkingDays(*req.WorkingDays)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		biz.WorkingDays = days
	}
	if req.OpenTime != nil {
		biz.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		biz.CloseTime = *req.CloseTime
	}
	if req.SlotDuration != nil {
		biz.SlotDurationMinutes = *req.SlotDuration
	}
	if req.NewPassword != nil && *req.NewPassword != "" {
		biz.AdminPassword = *req.NewPassword
	}

	for _, svc := range req.Services {
		if strings.TrimSpace(svc.Name) == "" {
			return fmt.Errorf("%w: service name is required", ErrInvalidInput)
		}
		if len(svc.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: service name is too long", ErrInvalidInput)
		}
		if svc.Duration != nil && *svc.Duration <= 0 {
			return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
		}
	}

	if err := biz.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
