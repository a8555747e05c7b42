package cycle

import (
	"fmt"
	"math/bits"

	"github.com/san-kum/moonsim/internal/dynamo"
)

// GCD is the Euclidean greatest common divisor of two non-negative values.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive values, or
// dynamo.ErrOverflow if it does not fit in an int64.
func LCM(a, b int64) (int64, error) {
	if a <= 0 || b <= 0 {
		return 0, fmt.Errorf("lcm of %d and %d: operands must be positive", a, b)
	}
	q := uint64(a / GCD(a, b))
	hi, lo := bits.Mul64(q, uint64(b))
	if hi != 0 || lo > 1<<63-1 {
		return 0, fmt.Errorf("lcm of %d and %d: %w", a, b, dynamo.ErrOverflow)
	}
	return int64(lo), nil
}

// Combine folds LCM over counts left to right. No counts combine to 1.
func Combine(counts ...int64) (int64, error) {
	result := int64(1)
	for _, c := range counts {
		var err error
		if result, err = LCM(result, c); err != nil {
			return 0, err
		}
	}
	return result, nil
}
