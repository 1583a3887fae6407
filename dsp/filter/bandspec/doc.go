// Package bandspec classifies a requested pair of cutoff frequencies into a
// concrete filter type.
//
// Cutoffs are tagged optionals ([Cutoff]); a cutoff of exactly 0 Hz counts as
// absent, so callers may express "no bound" with either [None] or Hz(0).
// [Classify] never fails: it returns pure data and reports questionable
// sampling rates through a logr logger. Range checks happen later, when a
// designer calls [FrequencySpec.Validate].
package bandspec
