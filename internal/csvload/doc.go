// Package csvload reads comma separated text into a model.Table.
//
// The format is deliberately simple: lines are split on LF (optionally
// preceded by any number of CRs) and each line is split on commas. There
// is no quoting or escaping, so a comma inside a quoted field still splits
// the cell. Rows are not required to have the same number of cells.
//
// ReadAsCSV performs the read on its own goroutine and delivers exactly one
// Result on the returned channel. Failures (read errors, unknown encodings,
// context cancellation) are delivered as Result.Err rather than leaving the
// caller waiting.
//
// Text decoding follows browser readAsText semantics: UTF-8 by default,
// with a leading byte order mark selecting UTF-8, UTF-16LE or UTF-16BE and
// being stripped. WithEncoding picks a different fallback by WHATWG label.
package csvload
