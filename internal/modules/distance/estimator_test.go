package distance

import "testing"

func TestEstimateFallback(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		wantMiles   float64
		wantMinutes int
	}{
		// 200 / 45 * 60 = 266.67 -> 267
		{"known pair", "London", "Manchester", 200, 267},
		{"reversed pair", "Manchester", "London", 200, 267},
		{"mixed case with postcode", "Manchester M1 1AA", "Birmingham B1 2AA", 90, 120},
		{"punctuation stripped", "Manchester!!, M1", "leeds.", 45, 60},
		// 50 / 45 * 60 = 66.67 -> 67
		{"unknown pair defaults", "Truro", "Inverness", 50, 67},
		{"empty inputs default", "", "", 50, 67},
		{"garbage defaults", "12345", "!!!", 50, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateFallback(tt.origin, tt.destination)
			if got.Miles != tt.wantMiles {
				t.Errorf("Miles = %v, want %v", got.Miles, tt.wantMiles)
			}
			if got.DurationMinutes != tt.wantMinutes {
				t.Errorf("DurationMinutes = %d, want %d", got.DurationMinutes, tt.wantMinutes)
			}
			if got.Source != SourceFallback {
				t.Errorf("Source = %q, want %q", got.Source, SourceFallback)
			}
			if got.Exact {
				t.Error("Exact = true, want false for estimates")
			}
		})
	}
}

func TestNormalizeArea(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"London", "london"},
		{"  London EC1 4AB  ", "london"},
		{"Manchester!!, M1", "manchester"},
		{"42", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeArea(tt.in); got != tt.want {
			t.Errorf("normalizeArea(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
