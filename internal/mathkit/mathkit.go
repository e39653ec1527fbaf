package mathkit

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MaxUInt returns the largest value the unsigned integer type can hold.
func MaxUInt[T UInt]() T {
	var zero T
	return ^zero
}

// GCD returns the greatest common divisor of a and b using the Euclidean algorithm.
// GCD(n, 0) is n.
func GCD[T UInt](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime reports whether a and b share no common divisor other than 1.
func Coprime[T UInt](a, b T) bool {
	return GCD(a, b) == 1
}

func CanUIntMulOverflow[T UInt](x, y T) bool {
	if x == 0 || y == 0 {
		return false
	}
	return MaxUInt[T]()/x < y
}

// MulUInt multiplies x and y, and reports false instead of overflowing.
func MulUInt[T UInt](x, y T) (T, bool) {
	if CanUIntMulOverflow(x, y) {
		var zero T
		return zero, false
	}
	return x * y, true
}
