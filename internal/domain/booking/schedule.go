package booking

import "github.com/kroppform/salon-scheduler/internal/models"

// WeekSchedule is the recurring weekly operating pattern: one entry per
// weekday (0=Sunday .. 6=Saturday). Pure lookup, no side effects; built
// from a fresh read of business_hours wherever the answer matters.
type WeekSchedule struct {
	days [7]*models.BusinessHours
}

func NewWeekSchedule(rows []models.BusinessHours) WeekSchedule {
	var ws WeekSchedule
	for i := range rows {
		wd := rows[i].Weekday
		if wd >= 0 && wd <= 6 {
			ws.days[wd] = &rows[i]
		}
	}
	return ws
}

// IsOpen reports whether the weekday has an entry, is not marked closed,
// and carries both bounds.
func (ws WeekSchedule) IsOpen(weekday int) bool {
	_, _, ok := ws.Bounds(weekday)
	return ok
}

func (ws WeekSchedule) Bounds(weekday int) (open, close string, ok bool) {
	if weekday < 0 || weekday > 6 {
		return "", "", false
	}

	day := ws.days[weekday]
	if day == nil || day.Closed || day.OpenTime == "" || day.CloseTime == "" {
		return "", "", false
	}

	return day.OpenTime, day.CloseTime, true
}

// Contains reports whether [startMin, endMin) lies within the weekday's
// operating bounds.
func (ws WeekSchedule) Contains(weekday, startMin, endMin int) bool {
	open, close, ok := ws.Bounds(weekday)
	if !ok {
		return false
	}

	openMin, ok1 := ParseHM(open)
	closeMin, ok2 := ParseHM(close)
	if !ok1 || !ok2 {
		return false
	}

	return startMin >= openMin && endMin <= closeMin
}
