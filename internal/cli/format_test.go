package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"2000", "2,000.00"},
		{"1234.5", "1,234.50"},
		{"1234567.89", "1,234,567.89"},
		{"-120", "-120.00"},
		{"-1234.56", "-1,234.56"},
		{"0.01", "0.01"},
	}

	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Fatalf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(decimal.RequireFromString("120")); got != "+120.00" {
		t.Fatalf("FormatSigned(120) = %q, want +120.00", got)
	}
	if got := FormatSigned(decimal.RequireFromString("-120")); got != "-120.00" {
		t.Fatalf("FormatSigned(-120) = %q, want -120.00", got)
	}
}

func TestFormatDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"}, {31, "31st"},
	}
	for _, tt := range tests {
		if got := FormatDay(tt.day); got != tt.want {
			t.Fatalf("FormatDay(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}
