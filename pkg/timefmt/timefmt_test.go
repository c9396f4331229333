package timefmt

import "testing"

func TestMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"hours and minutes", 125, "2h 5m"},
		{"exact hour", 60, "1h"},
		{"minutes only", 45, "45m"},
		{"zero", 0, ""},
		{"one minute", 1, "1m"},
		{"many hours", 600, "10h"},
		{"day and change", 1505, "25h 5m"},
		{"fractional rounds up", 89.6, "1h 30m"},
		{"fractional rounds down", 89.4, "1h 29m"},
		{"negative treated as zero", -30, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minutes(tt.in); got != tt.want {
				t.Errorf("Minutes(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"morning with minutes", 90, "1:30 am"},
		{"afternoon on the hour", 780, "1 pm"},
		{"midnight", 0, "0 am"},
		{"noon", 720, "0 pm"},
		{"just before noon", 719, "11:59 am"},
		{"just after noon", 721, "0:01 pm"},
		{"evening", 1170, "7:30 pm"},
		{"last minute of day", 1439, "11:59 pm"},
		{"wraps past a day", 1500, "1 am"},
		{"single digit minutes padded", 605, "10:05 am"},
		{"negative treated as zero", -5, "0 am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.in); got != tt.want {
				t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
