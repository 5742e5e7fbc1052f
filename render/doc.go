// Package render formats graphs and postman results as text.
//
//   - Matrix: the weight matrix, four-character right-aligned cells.
//   - Route:  a circuit as space-separated "u-v" steps.
//   - Summary / StyledSummary: a human-readable report of a Result; the
//     styled variant uses lipgloss and is meant for terminals.
//   - JSON:   a machine-readable report of a Result.
package render
