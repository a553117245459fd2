package minigrep

import "fmt"

// Config holds everything Run needs.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// ParseConfig builds a Config from the argument list (excluding the
// program name) and an environment lookup. Taking the lookup as a function
// instead of calling os.Getenv keeps the environment out of the tests.
func ParseConfig(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) < 2 {
		return Config{}, fmt.Errorf("not enough arguments: want query and file path, got %d", len(args))
	}

	// Presence is what flips the switch, not the value, so IGNORE_CASE=0
	// still means ignore case. That is surprising but it is the behaviour
	// the book settles on, kept here for fidelity.
	_, ignoreCase := lookupEnv("IGNORE_CASE")

	return Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase,
	}, nil
}
