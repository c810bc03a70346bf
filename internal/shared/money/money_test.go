package money

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"Zero", 0, 2, "0.00"},
		{"Small", 42.5, 2, "42.50"},
		{"Thousands", 12345.678, 2, "12,345.68"},
		{"Millions", 1234567.89, 2, "1,234,567.89"},
		{"ExactThousand", 1000, 2, "1,000.00"},
		{"Negative", -9876.54, 2, "-9,876.54"},
		{"WholeDollars", 12345.67, 0, "12,346"},
		{"OneDecimal", 3.25, 1, "3.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value, tt.decimals); got != tt.want {
				t.Errorf("Format(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestDollars(t *testing.T) {
	if got := Dollars(2500); got != "$2,500.00" {
		t.Errorf("Dollars(2500) = %q, want %q", got, "$2,500.00")
	}
	if got := DollarsWhole(2500.75); got != "$2,501" {
		t.Errorf("DollarsWhole(2500.75) = %q, want %q", got, "$2,501")
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(433.333333); got != 433.33 {
		t.Errorf("Round2 = %v, want 433.33", got)
	}
	if got := Round1(3.14159); got != 3.1 {
		t.Errorf("Round1 = %v, want 3.1", got)
	}
}
