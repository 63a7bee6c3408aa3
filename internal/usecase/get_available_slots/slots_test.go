package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name         string
		openTime     types.TimeString
		closeTime    types.TimeString
		slotDuration int
		booked       []types.TimeString
		wantCount    int
		wantFirst    types.TimeString
		wantLast     types.TimeString
	}{
		{
			name:         "standard day 09:00-18:00 with 30 minute slots",
			openTime:     "09:00",
			closeTime:    "18:00",
			slotDuration: 30,
			wantCount:    18,
			wantFirst:    "09:00",
			wantLast:     "17:30",
		},
		{
			name:         "hour slots",
			openTime:     "09:00",
			closeTime:    "18:00",
			slotDuration: 60,
			wantCount:    9,
			wantFirst:    "09:00",
			wantLast:     "17:00",
		},
		{
			name:         "tail shorter than slot is dropped",
			openTime:     "09:00",
			closeTime:    "18:00",
			slotDuration: 50,
			wantCount:    10,
			wantFirst:    "09:00",
			wantLast:     "16:30",
		},
		{
			name:         "slot ending exactly at close time is included",
			openTime:     "10:00",
			closeTime:    "12:00",
			slotDuration: 60,
			wantCount:    2,
			wantFirst:    "10:00",
			wantLast:     "11:00",
		},
		{
			name:         "duration longer than working day gives empty grid",
			openTime:     "10:00",
			closeTime:    "11:00",
			slotDuration: 90,
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(tt.openTime, tt.closeTime, tt.slotDuration, tt.booked)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, slots[0].StartTime)
				assert.Equal(t, tt.wantLast, slots[len(slots)-1].StartTime)
			}
		})
	}
}

func TestGenerateTimeSlots_Availability(t *testing.T) {
	booked := []types.TimeString{"09:30", "14:00"}

	slots, err := generateTimeSlots("09:00", "18:00", 30, booked)
	require.NoError(t, err)
	require.Len(t, slots, 18)

	byStart := make(map[types.TimeString]bool, len(slots))
	for _, slot := range slots {
		byStart[slot.StartTime] = slot.Available
	}

	assert.False(t, byStart["09:30"])
	assert.False(t, byStart["14:00"])
	assert.True(t, byStart["09:00"])
	assert.True(t, byStart["10:00"])
	assert.True(t, byStart["17:30"])
}

func TestGenerateTimeSlots_Spacing(t *testing.T) {
	slots, err := generateTimeSlots("09:00", "18:00", 30, nil)
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].StartTime.Minutes()
		require.NoError(t, err)
		curr, err := slots[i].StartTime.Minutes()
		require.NoError(t, err)
		assert.Equal(t, 30, curr-prev, "slots must be evenly spaced")
	}
}
