package main

import "github.com/mouse-blink/cubegen/cmd"

func main() {
	cmd.Execute()
}
