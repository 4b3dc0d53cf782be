package verifier

// Go integer arithmetic wraps silently. These helpers are the checked
// discipline properties use when overflow must count as a failure.

func signed[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// AddChecked returns a+b or fails the path on overflow.
func AddChecked[T Integer](v Verifier, a, b T) (T, error) {
	s := a + b
	var overflow bool
	if signed[T]() {
		overflow = (b > 0 && s < a) || (b < 0 && s > a)
	} else {
		overflow = s < a
	}
	if overflow {
		return s, v.ReportError("attempt to add with overflow")
	}
	return s, nil
}

// SubChecked returns a-b or fails the path on overflow.
func SubChecked[T Integer](v Verifier, a, b T) (T, error) {
	d := a - b
	var overflow bool
	if signed[T]() {
		overflow = (b > 0 && d > a) || (b < 0 && d < a)
	} else {
		overflow = b > a
	}
	if overflow {
		return d, v.ReportError("attempt to subtract with overflow")
	}
	return d, nil
}

// MulChecked returns a*b or fails the path on overflow.
func MulChecked[T Integer](v Verifier, a, b T) (T, error) {
	p := a * b
	if a == 0 || b == 0 {
		return p, nil
	}
	overflow := p/b != a
	if signed[T]() {
		allOnes := ^T(0)
		// MIN * -1 wraps to MIN and survives the division check.
		if (b == allOnes && a == -a) || (a == allOnes && b == -b) {
			overflow = true
		}
	}
	if overflow {
		return p, v.ReportError("attempt to multiply with overflow")
	}
	return p, nil
}
