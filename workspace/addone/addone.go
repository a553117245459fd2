// Package addone is one of the workspace's two library modules.
package addone

// AddOne adds one to the given number.
func AddOne(x int) int {
	return x + 1
}
