package main

import "shopping-agent/cmd"

func main() {
	cmd.Execute()
}
