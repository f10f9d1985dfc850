package scheduler

import (
	"testing"
	"time"
)

func TestNextRun(t *testing.T) {
	loc := time.Local

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before the backup hour fires the same day",
			now:  time.Date(2025, 3, 10, 1, 15, 0, 0, loc),
			want: time.Date(2025, 3, 10, 2, 0, 0, 0, loc),
		},
		{
			name: "after the backup hour rolls to the next day",
			now:  time.Date(2025, 3, 10, 14, 0, 0, 0, loc),
			want: time.Date(2025, 3, 11, 2, 0, 0, 0, loc),
		},
		{
			name: "exactly at the backup hour rolls to the next day",
			now:  time.Date(2025, 3, 10, 2, 0, 0, 0, loc),
			want: time.Date(2025, 3, 11, 2, 0, 0, 0, loc),
		},
		{
			name: "month boundary",
			now:  time.Date(2025, 3, 31, 23, 59, 0, 0, loc),
			want: time.Date(2025, 4, 1, 2, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("nextRun(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
