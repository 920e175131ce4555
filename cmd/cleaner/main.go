// Package main provides the cleaner CLI, which simulates a cleaner moving on
// a grid under an A/G/D move script.
package main

func main() {
	Execute()
}
