// Package errorhandling covers panics and error values.
//
// Go splits failures the way Rust does: unrecoverable
// bugs panic and unwind the stack, everything expected comes back as an
// error value that the caller checks. There is no ? operator; the
// `if err != nil { return err }` line is the propagation idiom, and
// wrapping with %w is what makes errors.Is and errors.As work up the call
// chain. Set GOTRACEBACK=all to see more goroutine stacks when a panic
// brings the program down, the moral equivalent of RUST_BACKTRACE.
package errorhandling

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyFile is a sentinel: a fixed error value callers compare against
// with errors.Is rather than by string.
var ErrEmptyFile = errors.New("file is empty")

// IndexOutOfRange reproduces the chapter's v[99] crash on demand. Indexing
// past the end of a slice panics; this wrapper exists so a test can prove
// it with recover instead of killing the test binary.
func IndexOutOfRange() int {
	v := []int{1, 2, 3}
	return v[99]
}

// OpenOrCreate is the greeting-file example: open hello.txt, and if the
// problem is specifically that it does not exist, create it. Any other
// failure propagates. os.IsNotExist-style checks are done with errors.Is
// against fs.ErrNotExist, which os re-exports.
func OpenOrCreate(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	f, err = os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

// ReadUsernameFromFile is the long-form propagation example, written out
// with every check visible. Compare with ReadUsernameFromFileShort below.
func ReadUsernameFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadUsernameFromFileShort does the same job the way real code does it:
// one helper that already handles open/read/close, one error check.
func ReadUsernameFromFileShort(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return strings.TrimSpace(string(data)), nil
}

// LastCharOfFirstLine is the Option-returning example. The bool result
// stands in for Some/None; each early exit is where a ? would have been.
func LastCharOfFirstLine(text string) (rune, bool) {
	line, _, _ := strings.Cut(text, "\n")
	runes := []rune(line)
	if len(runes) == 0 {
		return 0, false
	}
	return runes[len(runes)-1], true
}

// ParseError carries structured context, the errors.As side of the story.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseHeader fails with a *ParseError wrapped in extra context, so a
// caller can pull the line number back out with errors.As.
func ParseHeader(header string) (string, error) {
	_, value, found := strings.Cut(header, ":")
	if !found {
		return "", fmt.Errorf("parsing header: %w", &ParseError{Line: 1, Msg: "missing colon"})
	}
	return strings.TrimSpace(value), nil
}

// SafeCall converts a panic back into an error at a boundary. recover only
// works inside a deferred function; this is the whole pattern.
func SafeCall(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()
	f()
	return nil
}
