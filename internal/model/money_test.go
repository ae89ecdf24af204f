package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "150", want: 15000},
		{in: "100", want: 10000},
		{in: "200", want: 20000},
		{in: "0", want: 0},
		{in: "99.99", want: 9999},
		{in: "0.005", want: 1},
		{in: "19.994", want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToCents(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Fatalf("ToCents(%s) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromCents(t *testing.T) {
	if got := FromCents(15000); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("FromCents(15000) = %s", got)
	}
	if got := FromCents(9999).String(); got != "99.99" {
		t.Fatalf("FromCents(9999) = %s", got)
	}
}

func TestCentsInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "0", want: true},
		{in: "150.25", want: true},
		{in: "21474836.47", want: true},
		{in: "21474836.48", want: false},
		{in: "1E10", want: false},
		{in: "1e17", want: false},
		{in: "-0.01", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CentsInRange(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Fatalf("CentsInRange(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
