// Package addtwo is the workspace's second library module.
package addtwo

// AddTwo adds two to the given number.
func AddTwo(x int) int {
	return x + 2
}
