package main

import "github.com/RyanBlaney/sonido-swara/cmd"

func main() {
	cmd.Execute()
}
