// Package zerophase applies a causal filter forward and backward so that the
// result has no phase distortion and the squared magnitude response of the
// underlying filter.
//
// The signal is extended at both edges before filtering and the extension is
// trimmed afterwards, which keeps start-up transients out of the output. Both
// passes start from the filter's steady state for the first sample they see.
package zerophase
