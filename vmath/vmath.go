package vmath

import "math"

// --- Sign & Rounding ---

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// SignF returns -1, 0, or 1 for a float without dividing by its magnitude
// NaN reports 0
func SignF(x float64) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Round rounds half away from zero to the nearest int
func Round(x float64) int {
	return int(math.Round(x))
}

// FloorDivMod splits n into a quotient rounded toward negative infinity and a
// remainder in [0, d). d must be positive
func FloorDivMod(n, d int) (q, r int) {
	q = n / d
	r = n % d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
