package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
)

// UseCase use case для получения сетки слотов на день
type UseCase struct {
	businessRepo    BusinessRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: slug=%s, date=%s", req.Slug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес по slug
	biz, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Нерабочий день - пустая сетка с кодом причины, это не ошибка
	if !biz.IsWorkingDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: business id=%d is closed on %s",
			biz.ID, req.Date.Format(domain.DateFormat))
		return &Response{
			BusinessID: biz.ID,
			Date:       req.Date,
			Slots:      []domain.TimeSlot{},
			Reason:     domain.ReasonClosedDay,
		}, nil
	}

	// 4. Получаем занятые времена активных записей на дату
	bookedTimes, err := uc.appointmentRepo.GetBookedTimes(ctx, biz.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку слотов с флагами занятости
	slots, err := generateTimeSlots(biz.OpenTime, biz.CloseTime, biz.SlotDurationMinutes, bookedTimes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s",
		len(slots), biz.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID: biz.ID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
