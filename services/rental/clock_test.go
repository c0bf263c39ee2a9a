package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEarliestBookableDate(t *testing.T) {
	nicosia, err := time.LoadLocation("Europe/Nicosia")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before cutoff books today",
			now:  time.Date(2026, 3, 10, 19, 59, 0, 0, nicosia),
			want: time.Date(2026, 3, 10, 0, 0, 0, 0, nicosia),
		},
		{
			name: "at cutoff rolls to tomorrow",
			now:  time.Date(2026, 3, 10, 20, 0, 0, 0, nicosia),
			want: time.Date(2026, 3, 11, 0, 0, 0, 0, nicosia),
		},
		{
			name: "after cutoff rolls to tomorrow",
			now:  time.Date(2026, 3, 10, 23, 30, 0, 0, nicosia),
			want: time.Date(2026, 3, 11, 0, 0, 0, 0, nicosia),
		},
		{
			name: "morning books today",
			now:  time.Date(2026, 3, 10, 0, 1, 0, 0, nicosia),
			want: time.Date(2026, 3, 10, 0, 0, 0, 0, nicosia),
		},
		{
			name: "cutoff at month end rolls into next month",
			now:  time.Date(2026, 3, 31, 21, 0, 0, 0, nicosia),
			want: time.Date(2026, 4, 1, 0, 0, 0, 0, nicosia),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EarliestBookableDate(tt.now, 20)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestBookingZone(t *testing.T) {
	loc := BookingZone("Europe/Nicosia")
	assert.Equal(t, "Europe/Nicosia", loc.String())

	assert.Equal(t, time.UTC, BookingZone("Not/AZone"))
}
