// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Checked and fatal arithmetic on guarded floats.

package guard

// TryAdd returns f + o, or a *ViolationError if the sum leaves K.
func (f Float[T, K]) TryAdd(o Float[T, K]) (Float[T, K], error) {
	return tryFrom[K]("add", f.v+o.v)
}

// TryAddScalar returns f + v, or a *ViolationError if the sum leaves K.
func (f Float[T, K]) TryAddScalar(v T) (Float[T, K], error) {
	return tryFrom[K]("add", f.v+v)
}

// TrySub returns f - o, or a *ViolationError if the difference leaves K.
func (f Float[T, K]) TrySub(o Float[T, K]) (Float[T, K], error) {
	return tryFrom[K]("sub", f.v-o.v)
}

// TrySubScalar returns f - v, or a *ViolationError if the difference leaves K.
func (f Float[T, K]) TrySubScalar(v T) (Float[T, K], error) {
	return tryFrom[K]("sub", f.v-v)
}

// TryMul returns f * o, or a *ViolationError if the product leaves K.
func (f Float[T, K]) TryMul(o Float[T, K]) (Float[T, K], error) {
	return tryFrom[K]("mul", f.v*o.v)
}

// TryMulScalar returns f * v, or a *ViolationError if the product leaves K.
func (f Float[T, K]) TryMulScalar(v T) (Float[T, K], error) {
	return tryFrom[K]("mul", f.v*v)
}

// TryDiv returns f / o, or a *ViolationError if the quotient leaves K.
// Division by zero yields an infinity or NaN and so fails for Finite.
func (f Float[T, K]) TryDiv(o Float[T, K]) (Float[T, K], error) {
	return tryFrom[K]("div", f.v/o.v)
}

// TryDivScalar returns f / v, or a *ViolationError if the quotient leaves K.
func (f Float[T, K]) TryDivScalar(v T) (Float[T, K], error) {
	return tryFrom[K]("div", f.v/v)
}

// Add is the + operator: f + o. It panics if the sum leaves K.
func (f Float[T, K]) Add(o Float[T, K]) Float[T, K] {
	return must(f.TryAdd(o))
}

// Sub is the - operator: f - o. It panics if the difference leaves K.
func (f Float[T, K]) Sub(o Float[T, K]) Float[T, K] {
	return must(f.TrySub(o))
}

// Mul is the * operator: f * o. It panics if the product leaves K.
func (f Float[T, K]) Mul(o Float[T, K]) Float[T, K] {
	return must(f.TryMul(o))
}

// Div is the / operator: f / o. It panics if the quotient leaves K.
func (f Float[T, K]) Div(o Float[T, K]) Float[T, K] {
	return must(f.TryDiv(o))
}

func must[T any](v T, err error) T {
	if err != nil {
		fatal(err)
	}
	return v
}
