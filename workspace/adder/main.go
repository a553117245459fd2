package main

import (
	"fmt"

	"github.com/LovetheFrogs/language-exploring/workspace/addone"
	"github.com/LovetheFrogs/language-exploring/workspace/addtwo"
)

func main() {
	num := 10
	fmt.Printf("%d plus one is %d!\n", num, addone.AddOne(num))
	fmt.Printf("%d plus two is %d!\n", num, addtwo.AddTwo(num))
}
