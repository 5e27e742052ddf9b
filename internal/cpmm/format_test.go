package cpmm

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero stays fixed point", 0, "0.000000"},
		{"plain value", 1.5, "1.500000"},
		{"negative value", -42.123456789, "-42.123457"},
		{"just under tiny threshold", 0.00009, "9.000000e-05"},
		{"at tiny threshold", 0.0001, "0.000100"},
		{"tiny negative", -0.00001, "-1.000000e-05"},
		{"just under large threshold", 999999.9, "999999.900000"},
		{"at large threshold", 1000000, "1.0000e+06"},
		{"large negative", -2500000, "-2.5000e+06"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNumber(tc.value); got != tc.want {
				t.Fatalf("FormatNumber(%g) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
