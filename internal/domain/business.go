package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

var (
	// ErrInvalidWorkingDays возвращается при некорректном наборе рабочих дней
	ErrInvalidWorkingDays = errors.New("invalid working days set")

	// ErrInvalidBusinessHours возвращается, когда время открытия не раньше времени закрытия
	ErrInvalidBusinessHours = errors.New("open time must be before close time")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("slot duration must be positive and fit into business hours")
)

// Business бизнес, принимающий записи (единственный в рамках деплоя)
type Business struct {
	ID     int64
	Name   string
	Slug   string
	Sector string

	Description *string
	Address     *string
	Phone       *string

	// AdminPassword непрозрачный админский секрет, сравнивается на каждой
	// чувствительной операции. Никогда не сериализуется наружу.
	AdminPassword string

	WorkingDays         WorkingDays
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int

	IsSetupComplete bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инварианты конфигурации бизнеса:
// открытие строго раньше закрытия, длительность слота положительна
// и не превышает длину рабочего дня
func (b *Business) Validate() error {
	if err := b.OpenTime.Validate(); err != nil {
		return err
	}
	if err := b.CloseTime.Validate(); err != nil {
		return err
	}

	openMinutes, err := b.OpenTime.Minutes()
	if err != nil {
		return err
	}
	closeMinutes, err := b.CloseTime.Minutes()
	if err != nil {
		return err
	}

	if openMinutes >= closeMinutes {
		return fmt.Errorf("%w: open=%s close=%s", ErrInvalidBusinessHours, b.OpenTime, b.CloseTime)
	}

	span := closeMinutes - openMinutes
	if b.SlotDurationMinutes <= 0 || b.SlotDurationMinutes > span {
		return fmt.Errorf("%w: duration=%d span=%d", ErrInvalidSlotDuration, b.SlotDurationMinutes, span)
	}

	return nil
}

// IsWorkingDay проверяет, принимает ли бизнес записи в указанную дату
// Индекс дня недели: 0=воскресенье .. 6=суббота (совпадает с time.Weekday)
func (b *Business) IsWorkingDay(date time.Time) bool {
	return b.WorkingDays.Contains(int(date.Weekday()))
}

// WorkingDays набор индексов рабочих дней недели (0=воскресенье .. 6=суббота)
// Хранится в БД как CSV строка, например "1,2,3,4,5,6"
type WorkingDays []int

// ParseWorkingDays парсит CSV строку в набор рабочих дней
func ParseWorkingDays(csv string) (WorkingDays, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, fmt.Errorf("%w: empty set", ErrInvalidWorkingDays)
	}

	seen := make(map[int]bool)
	days := make(WorkingDays, 0, 7)

	for _, part := range strings.Split(csv, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWorkingDays, part)
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: day index %d out of range 0..6", ErrInvalidWorkingDays, day)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	sort.Ints(days)
	return days, nil
}

// Contains проверяет вхождение индекса дня недели в набор
func (w WorkingDays) Contains(day int) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

// String возвращает CSV представление для хранения в БД
func (w WorkingDays) String() string {
	parts := make([]string, len(w))
	for i, d := range w {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
