package appointments

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	"github.com/randevuhub/RH-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей
type Service struct {
	appointmentRepo AppointmentRepository
	businessRepo    BusinessRepository
	serviceRepo     ServiceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID со снимком услуги
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt, s.loadService(ctx, appt.ServiceID)), nil
}

// List получает записи бизнеса с фильтрами по дате, месяцу и статусу
// Админская операция: токен сверяется с секретом бизнеса
// Записи упорядочены по дате и времени начала по возрастанию
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.ListAppointmentsResponse, error) {
	s.logger.Info("List: slug=%s", req.Slug)

	if strings.TrimSpace(req.Slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.Status != nil && !isKnownStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	biz, err := s.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("List: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("List: failed to get business slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("List: invalid admin token for business id=%d", biz.ID)
		return nil, ErrAccessDenied
	}

	filter := domain.AppointmentsFilter{BusinessID: biz.ID}
	if req.Month != nil {
		// месяц разворачивается в полуинтервал [первое число, первое число следующего)
		start := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
		end := start.AddDate(0, 1, 0)
		filter.StartDate = &start
		filter.EndDate = &end
	} else if req.Date != nil {
		filter.Date = req.Date
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.AppointmentResponse, 0, len(appointments))
	serviceCache := make(map[int64]*domain.Service)

	for _, appt := range appointments {
		var svc *domain.Service
		if appt.ServiceID != nil {
			cached, ok := serviceCache[*appt.ServiceID]
			if !ok {
				cached = s.loadService(ctx, appt.ServiceID)
				serviceCache[*appt.ServiceID] = cached
			}
			svc = cached
		}
		responses = append(responses, models.FromDomainAppointment(appt, svc))
	}

	s.logger.Info("List: returned %d appointment(s) for business id=%d", len(responses), biz.ID)
	return &models.ListAppointmentsResponse{Appointments: responses}, nil
}

// Delete физически удаляет запись
// Админская операция: токен сверяется с секретом бизнеса записи
func (s *Service) Delete(ctx context.Context, id int64, adminToken string) error {
	if id <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	biz, err := s.businessRepo.GetByID(ctx, appt.BusinessID)
	if err != nil {
		s.logger.Error("Delete: failed to get business id=%d: %v", appt.BusinessID, err)
		return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(adminToken), []byte(biz.AdminPassword)) != 1 {
		s.logger.Warn("Delete: invalid admin token for appointment id=%d", id)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// loadService получает снимок услуги для ответа
// Отсутствие услуги не считается ошибкой чтения записи
func (s *Service) loadService(ctx context.Context, serviceID *int64) *domain.Service {
	if serviceID == nil {
		return nil
	}

	svc, err := s.serviceRepo.GetByID(ctx, *serviceID)
	if err != nil {
		s.logger.Warn("loadService: failed to load service id=%d: %v", *serviceID, err)
		return nil
	}

	return svc
}

func isKnownStatus(status string) bool {
	switch domain.AppointmentStatus(status) {
	case domain.StatusPending, domain.StatusApproved, domain.StatusCancelled, domain.StatusCompleted:
		return true
	default:
		return false
	}
}
