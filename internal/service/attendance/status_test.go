package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/sunshine-dental/clinic-backend-go/internal/domain/schedule"
)

func TestCalculateStatus(t *testing.T) {
	t.Parallel()

	expected := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		checkIn time.Time
		want    attendance.Status
	}{
		{"five minutes early", time.Date(2024, 3, 4, 7, 55, 0, 0, time.UTC), attendance.StatusOnTime},
		{"exactly on time", expected, attendance.StatusOnTime},
		{"fifteen minutes late", time.Date(2024, 3, 4, 8, 15, 0, 0, time.UTC), attendance.StatusLate},
		{"one second late", expected.Add(time.Second), attendance.StatusLate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CalculateStatus(tt.checkIn, expected))
		})
	}
}

func TestDeriveShift(t *testing.T) {
	t.Parallel()

	assert.Equal(t, attendance.ShiftMorning, deriveShift(time.Date(2024, 3, 4, 7, 55, 0, 0, time.UTC)))
	assert.Equal(t, attendance.ShiftMorning, deriveShift(time.Date(2024, 3, 4, 11, 59, 0, 0, time.UTC)))
	assert.Equal(t, attendance.ShiftAfternoon, deriveShift(time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, attendance.ShiftAfternoon, deriveShift(time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)))
}

func TestEntryShift(t *testing.T) {
	t.Parallel()

	morning := schedule.ScheduleEntry{StartTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)}
	afternoon := schedule.ScheduleEntry{StartTime: time.Date(0, 1, 1, 13, 0, 0, 0, time.UTC)}

	assert.Equal(t, attendance.ShiftMorning, entryShift(morning))
	assert.Equal(t, attendance.ShiftAfternoon, entryShift(afternoon))
}
