package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightCount(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name: "timezone difference does not add a night",
			// 23:00 местного времени в UTC+7 — это ещё предыдущий день в UTC
			checkIn:  time.Date(2025, 6, 15, 23, 0, 0, 0, time.FixedZone("UTC+7", 7*3600)),
			checkOut: time.Date(2025, 6, 18, 1, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "intra-day times are ignored",
			checkIn:  time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 18, 6, 0, 0, 0, time.UTC),
			want:     3,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightCount(tt.checkIn, tt.checkOut))
		})
	}
}
