package main

import "github.com/furnspace/furnspace/cmd"

func main() {
	cmd.Start()
}
