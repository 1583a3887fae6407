// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain] for higher-order filters such as the Butterworth
// baseline-removal high-pass.
//
// Besides sample and block processing, a Chain can be primed with the
// steady-state response to a constant input ([Chain.Prime]) and reports the
// edge padding it needs for forward-backward filtering ([Chain.PadLen]).
// Both are consumed by dsp/filter/zerophase.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
