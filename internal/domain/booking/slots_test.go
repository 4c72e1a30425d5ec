package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHM(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMin int
		wantOK  bool
	}{
		{name: "mid morning", in: "10:00", wantMin: 600, wantOK: true},
		{name: "single digit hour", in: "9:30", wantMin: 570, wantOK: true},
		{name: "midnight", in: "00:00", wantMin: 0, wantOK: true},
		{name: "end of day", in: "23:59", wantMin: 1439, wantOK: true},
		{name: "hour out of range", in: "24:00", wantOK: false},
		{name: "minute out of range", in: "10:60", wantOK: false},
		{name: "garbage", in: "abc", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHM(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMin, got)
			}
		})
	}
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "09:05", FormatHM(545))
	assert.Equal(t, "00:00", FormatHM(0))
	assert.Equal(t, "18:30", FormatHM(1110))
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "identical",
			a:    Interval{600, 640},
			b:    Interval{600, 640},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{600, 640},
			b:    Interval{630, 690},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{600, 720},
			b:    Interval{630, 660},
			want: true,
		},
		{
			name: "back to back does not overlap",
			a:    Interval{600, 630},
			b:    Interval{630, 660},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{600, 630},
			b:    Interval{700, 730},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestGenerateStarts(t *testing.T) {
	t.Run("duration not on the grid still fits before close", func(t *testing.T) {
		// 40-minute service in a 10:00-19:00 day: the last start on the
		// 30-minute grid whose interval fits is 18:00 (18:20 < 19:00 but
		// 18:30 is the next grid point and 18:30+40 runs past close).
		starts := GenerateStarts("10:00", "19:00", 40)

		assert.Len(t, starts, 17)
		assert.Equal(t, "10:00", starts[0])
		assert.Equal(t, "18:00", starts[len(starts)-1])
	})

	t.Run("duration exactly fills the day", func(t *testing.T) {
		starts := GenerateStarts("09:00", "10:00", 60)
		assert.Equal(t, []string{"09:00"}, starts)
	})

	t.Run("duration longer than the day", func(t *testing.T) {
		starts := GenerateStarts("09:00", "10:00", 90)
		assert.Empty(t, starts)
	})

	t.Run("zero duration", func(t *testing.T) {
		assert.Nil(t, GenerateStarts("09:00", "17:00", 0))
	})

	t.Run("invalid bounds", func(t *testing.T) {
		assert.Nil(t, GenerateStarts("bad", "17:00", 30))
		assert.Nil(t, GenerateStarts("09:00", "bad", 30))
	})
}

func TestFilterAvailable(t *testing.T) {
	starts := GenerateStarts("10:00", "12:00", 30)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, starts)

	t.Run("no bookings keeps everything", func(t *testing.T) {
		free := FilterAvailable(starts, 30, nil)
		assert.Equal(t, starts, free)
	})

	t.Run("40-minute booking blocks two grid starts", func(t *testing.T) {
		// A booking 10:00-10:40 intersects both the 10:00 and the 10:30
		// candidate of a 30-minute service.
		booked := []Interval{{StartMin: 600, EndMin: 640}}

		free := FilterAvailable(starts, 30, booked)
		assert.Equal(t, []string{"11:00", "11:30"}, free)
	})

	t.Run("back to back booking does not block", func(t *testing.T) {
		booked := []Interval{{StartMin: 630, EndMin: 660}}

		free := FilterAvailable(starts, 30, booked)
		assert.Equal(t, []string{"10:00", "11:00", "11:30"}, free)
	})

	t.Run("long candidate blocked by later booking", func(t *testing.T) {
		// A 90-minute candidate at 10:00 reaches into a booking at 11:00.
		booked := []Interval{{StartMin: 660, EndMin: 690}}

		free := FilterAvailable([]string{"10:00"}, 90, booked)
		assert.Empty(t, free)
	})
}
