// Package pass designs Butterworth IIR filters as cascades of second-order
// sections.
//
// Lowpass and highpass cascades are built directly from RBJ biquads with
// Butterworth pole quality factors plus one first-order section for odd
// orders. Bandpass and bandstop cascades go through the analog prototype:
// Butterworth poles, a lowpass-to-band transform at prewarped edges, the
// bilinear transform in zero/pole/gain form and finally grouping of
// conjugate roots into sections.
//
// [Butterworth] is the checked entry point taking a classified
// bandspec.FrequencySpec; the per-type functions return nil on invalid input.
package pass
