package math

// FastFloor rounds x toward negative infinity. x must lie within the int range.
func FastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func Clamp(val, low, high float64) float64 {
	return min(high, max(low, val))
}

// SoftMin is a polynomial smooth minimum; k controls the blend width.
func SoftMin(a, b, k float64) float64 {
	h := max(k-abs(a-b), 0) / k
	return min(a, b) - h*h*h*k/6.0
}

// Map linearly remaps val from [ai, bi] onto [af, bf].
func Map(val, ai, bi, af, bf float64) float64 {
	return af + (val-ai)/(bi-ai)*(bf-af)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
