package main

import "github.com/WinterNacho/Polylla-Unified/cmd/polylla/cmd"

func main() {
	cmd.Execute()
}
