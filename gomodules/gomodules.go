// Package gomodules is the packages-and-crates chapter for Go.
//
// The cargo material maps onto the go tool like this:
//
//   - Cargo.toml        -> go.mod (module path, go version, require block)
//   - cargo doc --open  -> go doc / pkg.go.dev, rendered from comments
//     like this one; Example functions below double as documentation and
//     as tests.
//   - opt-level profiles -> there are no profiles; release stripping is
//     done ad hoc with `go build -ldflags="-s -w"` and build tags.
//   - crates.io publish  -> pushing a version tag; the proxy picks it up.
//   - cargo yank         -> the retract directive in go.mod.
//
// The README at the repo root walks through the command side. This package
// holds the code side: documented functions with runnable examples, plus
// the obligatory "use somebody else's package" demonstration, which pulls
// in a small third-party dependency the way the book's chapter added rand.
package gomodules

import "github.com/google/shlex"

// AddOne adds one to the given number.
//
// The doc comment and the ExampleAddOne function in the test file together
// are what `cargo doc` examples were: rendered documentation whose code is
// compiled and run by `go test`.
func AddOne(x int) int {
	return x + 1
}

// SplitCommand splits a shell-style command line into arguments, honoring
// quotes and escapes. The work is done by github.com/google/shlex; the
// point of this function is the require line it forces into go.mod and the
// import above, which is all "adding a dependency" amounts to once
// `go get` has run.
func SplitCommand(line string) ([]string, error) {
	return shlex.Split(line)
}
