package main

import "github.com/memewall/memewall/cmd"

func main() {
	cmd.Execute()
}
