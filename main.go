package main

import "github.com/mkaski/focusforge/cmd"

func main() {
	cmd.Execute()
}
