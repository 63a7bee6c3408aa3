package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randevuhub/RH-AppointmentService/pkg/types"
)

func TestParseWorkingDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WorkingDays
		wantErr bool
	}{
		{"typical week", "1,2,3,4,5,6", WorkingDays{1, 2, 3, 4, 5, 6}, false},
		{"with spaces", " 1, 2 ,3", WorkingDays{1, 2, 3}, false},
		{"unsorted input is normalized", "5,1,3", WorkingDays{1, 3, 5}, false},
		{"duplicates are collapsed", "1,1,2", WorkingDays{1, 2}, false},
		{"sunday only", "0", WorkingDays{0}, false},
		{"empty", "", nil, true},
		{"out of range", "1,7", nil, true},
		{"negative", "-1", nil, true},
		{"not a number", "1,mon", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkingDays(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWorkingDays)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDays_Roundtrip(t *testing.T) {
	days, err := ParseWorkingDays("1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5", days.String())
}

func TestBusiness_Validate(t *testing.T) {
	valid := func() *Business {
		return &Business{
			OpenTime:            types.TimeString("09:00"),
			CloseTime:           types.TimeString("18:00"),
			SlotDurationMinutes: 30,
		}
	}

	t.Run("valid configuration", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("open equals close", func(t *testing.T) {
		biz := valid()
		biz.CloseTime = types.TimeString("09:00")
		assert.ErrorIs(t, biz.Validate(), ErrInvalidBusinessHours)
	})

	t.Run("open after close", func(t *testing.T) {
		biz := valid()
		biz.OpenTime = types.TimeString("19:00")
		assert.ErrorIs(t, biz.Validate(), ErrInvalidBusinessHours)
	})

	t.Run("zero slot duration", func(t *testing.T) {
		biz := valid()
		biz.SlotDurationMinutes = 0
		assert.ErrorIs(t, biz.Validate(), ErrInvalidSlotDuration)
	})

	t.Run("slot longer than business day", func(t *testing.T) {
		biz := valid()
		biz.SlotDurationMinutes = 10 * 60
		assert.ErrorIs(t, biz.Validate(), ErrInvalidSlotDuration)
	})

	t.Run("slot exactly the business day", func(t *testing.T) {
		biz := valid()
		biz.SlotDurationMinutes = 9 * 60
		assert.NoError(t, biz.Validate())
	})

	t.Run("malformed open time", func(t *testing.T) {
		biz := valid()
		biz.OpenTime = types.TimeString("9am")
		assert.Error(t, biz.Validate())
	})
}

func TestBusiness_IsWorkingDay(t *testing.T) {
	biz := &Business{WorkingDays: WorkingDays{1, 2, 3, 4, 5, 6}}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, biz.IsWorkingDay(monday))
	assert.False(t, biz.IsWorkingDay(sunday))
}
