// Package guessing is the guessing game chapter.
//
// The game picks a secret number between 1 and 100, then reads guesses in a
// loop. Each guess is parsed from a line of input; non-numeric lines are
// skipped and the loop asks again. The game prints whether the guess was too
// small or too big and stops once the secret is found.
//
// The game logic is written against io.Reader and io.Writer instead of
// touching os.Stdin and os.Stdout directly, so the whole loop can be driven
// from a test with scripted input. The binary in cmd/guessing wires the real
// terminal in.
package guessing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MinSecret and MaxSecret bound the number the game picks.
const (
	MinSecret = 1
	MaxSecret = 100
)

// Play runs the game loop until the secret is guessed or input runs out.
// It returns the number of valid guesses that were made and whether the
// secret was found before input ended.
func Play(in io.Reader, out io.Writer, secret int) (guesses int, won bool) {
	fmt.Fprintln(out, "Welcome to LovetheFrog's Go guessing game!")
	fmt.Fprintln(out, "------------------------------------------")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Please input your guess.")

		if !scanner.Scan() {
			// Input closed without the secret being found.
			return guesses, false
		}

		// Atoi fails on anything that is not an integer. Instead of
		// crashing, ask again.
		guess, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}
		guesses++

		fmt.Fprintf(out, "Your guess was %d\n", guess)

		switch {
		case guess < secret:
			fmt.Fprintln(out, "Guess is too small!")
		case guess > secret:
			fmt.Fprintln(out, "Guess is too big!")
		default:
			fmt.Fprintln(out, "Guess is correct!")
			return guesses, true
		}
	}
}
