package main

import "github.com/pfrederiksen/pathfinder/cmd"

func main() {
	cmd.Execute()
}
