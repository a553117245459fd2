package main

import (
	"math/rand"
	"os"

	"github.com/LovetheFrogs/language-exploring/guessing"
)

func main() {
	secret := rand.Intn(guessing.MaxSecret-guessing.MinSecret+1) + guessing.MinSecret
	guessing.Play(os.Stdin, os.Stdout, secret)
}
