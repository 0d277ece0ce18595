package pricing

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 mins"},
		{1, "1 min"},
		{45, "45 mins"},
		{59, "59 mins"},
		{60, "1 hour 0 mins"},
		{61, "1 hour 1 min"},
		{120, "2 hours 0 mins"},
		{267, "4 hours 27 mins"},
		{-10, "0 mins"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "£0.00"},
		{2.6, "£2.60"},
		{53.91, "£53.91"},
		{2070.6, "£2070.60"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.v); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{2.604, 2.60},
		{2.606, 2.61},
		{171.60000000000002, 171.60},
		{60.059999999999995, 60.06},
		{-1.005, -1.01},
	}
	for _, tt := range tests {
		if got := roundMoney(tt.v); got != tt.want {
			t.Errorf("roundMoney(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
