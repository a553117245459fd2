// Package hello is the first chapter: a minimal Go program.
//
// Go programs are organized into packages. An executable needs a package main
// with a func main, while everything else is a library package like this one.
// Running `go run .` from the repo root prints the tour, which starts here.
package hello

// Greeting returns the classic first-program message.
func Greeting() string {
	return "Hello, world!"
}

// GreetingFor greets a specific person. Unlike the plain Greeting, it shows
// how functions take parameters. String concatenation with + works, but
// fmt.Sprintf is the usual tool once formatting gets any more complex.
func GreetingFor(name string) string {
	return "Hello, " + name + "!"
}
