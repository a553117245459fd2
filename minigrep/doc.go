// Package minigrep is the I/O project: a small grep.
//
// Usage through cmd/minigrep:
//
//	minigrep <query> <file>
//
// It prints every line of the file containing the query. Setting the
// IGNORE_CASE environment variable (to anything non-empty) switches to
// case-insensitive matching; the binary also loads a .env file from the
// working directory when one exists, so the switch can live there during
// development. Files ending in .gz are decompressed transparently while
// reading.
//
// The package is split the way the project chapter splits it: argument
// parsing (Config, ParseConfig), the search itself (Search,
// SearchInsensitive), and the driver (Run) that connects them. main stays
// a thin shell so everything interesting is testable.
package minigrep
