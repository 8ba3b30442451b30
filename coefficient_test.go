package decfloat

import (
	"testing"
)

func TestFint_appendDigit(t *testing.T) {
	tests := []struct {
		x    fint
		d    byte
		want fint
		ok   bool
	}{
		{0, 7, 7, true},
		{12, 3, 123, true},
		{1200, 4, 12004, true},
		{maxFint / 10, 9, maxFint, true},
		{maxFint / 10, 0, maxFint - 9, true},
		{maxFint, 0, 0, false},
		{maxFint/10 + 1, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.x.appendDigit(tt.d)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.appendDigit(%v) = %v, %v, want %v, %v", tt.x, tt.d, got, ok, tt.want, tt.ok)
		}
	}
}
