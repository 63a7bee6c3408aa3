package get_available_slots

import (
	"time"

	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	getAvailableSlots "github.com/randevuhub/RH-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   string          `json:"date"`
	Slots  []AvailableSlot `json:"slots"`
	Reason string          `json:"reason,omitempty"`
}

// AvailableSlot модель слота в ответе
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(slug, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Slug: slug,
		Date: date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
		Reason: resp.Reason,
	}
}
