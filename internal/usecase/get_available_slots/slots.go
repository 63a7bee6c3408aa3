package get_available_slots

import (
	"github.com/randevuhub/RH-AppointmentService/internal/domain"
	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует сетку слотов рабочего дня
// Слоты идут с шагом slotDuration от времени открытия; последний слот - тот,
// чей конец ещё помещается до закрытия включительно:
//
//	open=09:00 close=18:00 duration=30 -> 09:00 .. 17:30 (18 слотов)
//	open=09:00 close=18:00 duration=60 -> 09:00 .. 17:00 (9 слотов)
//	duration=50 -> последний слот 17:00, хвост 17:50-18:00 отбрасывается
//
// Слот считается занятым при точном совпадении времени начала с активной записью
func generateTimeSlots(
	openTime, closeTime types.TimeString,
	slotDuration int,
	bookedTimes []types.TimeString,
) ([]domain.TimeSlot, error) {
	openMinutes, err := openTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := closeTime.Minutes()
	if err != nil {
		return nil, err
	}

	booked := make(map[types.TimeString]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := make([]domain.TimeSlot, 0)
	for current := openMinutes; current+slotDuration <= closeMinutes; current += slotDuration {
		start, err := types.FromMinutes(current)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.TimeSlot{
			StartTime: start,
			Available: !booked[start],
		})
	}

	return slots, nil
}
