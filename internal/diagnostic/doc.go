// Package diagnostic provides structured errors, warnings and notes
// produced while validating symbol tables.
//
// Key capabilities:
//   - Missing or unsupported symbol errors
//   - Warnings for entries that were accepted after normalisation
//   - A combined error value for callers that only need pass/fail
package diagnostic
