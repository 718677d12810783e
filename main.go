package main

import "github.com/gaurav-prasanna/animalpage/cmd"

func main() {
	cmd.Execute()
}
