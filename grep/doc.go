// Package grep finds the lines of a text that contain a query string.
//
// A search runs in three steps:
//
//   - [Build] turns command-line tokens and an optional environment lookup
//     into an immutable [Config].
//   - [Run] reads the configured file in full and writes every matching line.
//   - [Search] and [SearchCaseInsensitive] do the filtering. They are pure
//     and never fail.
//
// Matches are reported as [Line] spans into the searched text, so a [Result]
// never copies line contents until they are asked for.
//
// # Line endings
//
// Text is split on '\n'. A trailing newline does not produce an empty final
// line, and a '\r' directly before a '\n' is treated as part of the line
// ending. Any other '\r' is ordinary line content.
package grep
