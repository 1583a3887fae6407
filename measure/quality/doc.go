// Package quality computes time-domain amplitude and distribution
// statistics used to judge a cleaned bio-signal.
//
// Skewness and excess kurtosis double as the classic ECG signal quality
// indices: a clean ECG is dominated by sparse QRS spikes and shows a large
// positive kurtosis, while residual powerline or broadband noise pulls it
// toward zero.
package quality
