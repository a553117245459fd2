package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/LovetheFrogs/language-exploring/minigrep"
)

func main() {
	// Load .env if present so IGNORE_CASE can be set per checkout; a
	// missing file is the normal case and not worth a warning.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}

	config, err := minigrep.ParseConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
		os.Exit(1)
	}

	if err := minigrep.Run(config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}
