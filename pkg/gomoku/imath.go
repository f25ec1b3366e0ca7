package gomoku

// IPow raises base to a non-negative integer exponent, by squaring
func IPow[T ~int | ~int64](base T, exp int) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// ISqrt returns floor(sqrt(n)) for n >= 0, and 0 for negative input
func ISqrt(n int) int {
	if n < 2 {
		return max(n, 0)
	}

	// Newton iteration, converges from above
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
