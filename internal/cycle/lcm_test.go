package cycle

import (
	"errors"
	"testing"

	"github.com/san-kum/moonsim/internal/dynamo"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{5, 0, 5},
		{0, 5, 5},
		{231614, 108344, 2},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		counts []int64
		want   int64
	}{
		{"small", []int64{4, 6, 8}, 24},
		{"ones", []int64{1, 1, 1}, 1},
		{"primes", []int64{3, 5, 7}, 105},
		{"order independent", []int64{8, 4, 6}, 24},
		{"sample axes", []int64{18, 28, 44}, 2772},
		{"second sample axes", []int64{2028, 5898, 4702}, 4686774924},
		{"empty", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine(tt.counts...)
			if err != nil {
				t.Fatalf("Combine(%v) failed: %v", tt.counts, err)
			}
			if got != tt.want {
				t.Errorf("Combine(%v) = %d, want %d", tt.counts, got, tt.want)
			}
		})
	}
}

func TestLCMOverflow(t *testing.T) {
	_, err := LCM(1<<62, 3)
	if !errors.Is(err, dynamo.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}

	got, err := LCM(1<<62, 2)
	if err != nil || got != 1<<62 {
		t.Errorf("LCM(2^62, 2) = %d, %v; want 2^62", got, err)
	}
}

func TestLCMRejectsNonPositive(t *testing.T) {
	for _, pair := range [][2]int64{{0, 4}, {4, 0}, {-2, 4}} {
		if _, err := LCM(pair[0], pair[1]); err == nil {
			t.Errorf("LCM(%d, %d) should fail", pair[0], pair[1])
		}
	}
}
