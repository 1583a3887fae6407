// Package tf provides a transfer-function (numerator/denominator) filter
// runtime.
//
// A [Filter] realizes H(z) = B(z)/A(z) in Direct Form II Transposed with an
// explicit delay line. It is meant for short polynomials such as the
// moving-average kernel used for powerline cancellation; high-order IIR
// designs belong in dsp/filter/biquad cascades, where rounding stays
// bounded.
package tf
