// Exploring Go chapter by chapter.
//
// Each top-level package is one chapter of notes with its own tests. This
// file is a quick tour: it calls into a handful of chapters and prints
// their output, mostly as a smoke check that everything still wires up.
// The real content is in the packages and their _test.go files; run
// `go test ./...` to execute all of it.

package main

import (
	"fmt"
	"os"

	"github.com/LovetheFrogs/language-exploring/collections"
	"github.com/LovetheFrogs/language-exploring/controlflow"
	"github.com/LovetheFrogs/language-exploring/generics"
	"github.com/LovetheFrogs/language-exploring/hello"
	"github.com/LovetheFrogs/language-exploring/matchflow"
	"github.com/LovetheFrogs/language-exploring/oop"
	"github.com/LovetheFrogs/language-exploring/structs"
	"github.com/LovetheFrogs/language-exploring/writingtests"
)

func main() {
	fmt.Println(hello.Greeting())
	fmt.Println()

	fmt.Println("-- control flow --")
	controlflow.Countdown(os.Stdout, 3)
	fmt.Println()

	fmt.Println("-- structs --")
	rect := structs.Rectangle{Width: 30, Height: 50}
	fmt.Printf("The area of %s is %d square pixels.\n", rect, rect.Area())
	fmt.Println()

	fmt.Println("-- match control flow --")
	coin := matchflow.Coin{Kind: matchflow.Quarter, State: matchflow.Alaska}
	fmt.Printf("That coin is worth %d cents.\n", matchflow.ValueInCents(os.Stdout, coin))
	fmt.Println()

	fmt.Println("-- collections --")
	fmt.Println(collections.PigLatinSentence("hello world apple"))
	fmt.Println()

	fmt.Println("-- generics and interfaces --")
	tweet := generics.Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}
	fmt.Println("1 new tweet:", tweet.Summarize())
	fmt.Println(generics.Notify(tweet))
	fmt.Println()

	fmt.Println("-- state pattern --")
	post := oop.NewPost()
	post.AddText("I ate a salad for lunch today")
	post.RequestReview()
	post.Approve()
	fmt.Println("published:", post.Content())
	fmt.Println()

	fmt.Printf("and finally, AddTwo(2) = %d\n", writingtests.AddTwo(2))
}
