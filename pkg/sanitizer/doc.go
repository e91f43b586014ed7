// Package sanitizer normalizes free-form user input before validation.
//
// Sanitization never rejects input, it only cleans it: trimming,
// whitespace collapsing and control-character stripping. Rejection is
// the validator's job.
package sanitizer
