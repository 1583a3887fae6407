// Package biosignal cleans single-channel ECG and PPG recordings.
//
// [Engine.Filter] runs two zero-phase stages on a complete signal:
//
//  1. baseline removal: a Butterworth high-pass (order 5 at 0.5 Hz by
//     default) applied forward and backward with odd-reflection edges;
//  2. powerline cancellation: a moving average whose length spans one
//     powerline period, applied forward and backward with constant edges.
//
// The moving average places spectral zeros at the powerline frequency and
// its harmonics. It also smooths the waveform, so filtering an already
// cleaned signal changes it again.
//
// Engines hold only configuration. Filters are designed per call, so one
// Engine may be shared between goroutines.
package biosignal
