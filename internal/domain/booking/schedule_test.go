package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kroppform/salon-scheduler/internal/models"
)

func weekRows() []models.BusinessHours {
	return []models.BusinessHours{
		{Weekday: 0, Closed: true},
		{Weekday: 1, OpenTime: "09:00", CloseTime: "18:00"},
		{Weekday: 2, OpenTime: "09:00", CloseTime: "18:00"},
		{Weekday: 6, OpenTime: "10:00", CloseTime: "15:00"},
	}
}

func TestWeekSchedule_Bounds(t *testing.T) {
	ws := NewWeekSchedule(weekRows())

	open, close, ok := ws.Bounds(1)
	assert.True(t, ok)
	assert.Equal(t, "09:00", open)
	assert.Equal(t, "18:00", close)

	t.Run("closed weekday", func(t *testing.T) {
		_, _, ok := ws.Bounds(0)
		assert.False(t, ok)
	})

	t.Run("weekday without a row", func(t *testing.T) {
		_, _, ok := ws.Bounds(3)
		assert.False(t, ok)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		_, _, ok := ws.Bounds(7)
		assert.False(t, ok)
		_, _, ok = ws.Bounds(-1)
		assert.False(t, ok)
	})

	t.Run("row with empty bounds counts as closed", func(t *testing.T) {
		ws := NewWeekSchedule([]models.BusinessHours{{Weekday: 4}})
		assert.False(t, ws.IsOpen(4))
	})
}

func TestWeekSchedule_IsOpen(t *testing.T) {
	ws := NewWeekSchedule(weekRows())

	assert.True(t, ws.IsOpen(1))
	assert.True(t, ws.IsOpen(6))
	assert.False(t, ws.IsOpen(0))
	assert.False(t, ws.IsOpen(5))
}

func TestWeekSchedule_Contains(t *testing.T) {
	ws := NewWeekSchedule(weekRows())

	tests := []struct {
		name     string
		weekday  int
		startMin int
		endMin   int
		want     bool
	}{
		{name: "fully inside", weekday: 1, startMin: 600, endMin: 660, want: true},
		{name: "exact bounds", weekday: 1, startMin: 540, endMin: 1080, want: true},
		{name: "ends at close", weekday: 1, startMin: 1050, endMin: 1080, want: true},
		{name: "runs past close", weekday: 1, startMin: 1060, endMin: 1100, want: false},
		{name: "starts before open", weekday: 1, startMin: 500, endMin: 560, want: false},
		{name: "closed day", weekday: 0, startMin: 600, endMin: 660, want: false},
		{name: "missing day", weekday: 3, startMin: 600, endMin: 660, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ws.Contains(tt.weekday, tt.startMin, tt.endMin))
		})
	}
}
